package services

import (
	"sync"

	"github.com/dkravets/internhub/internal/client/models"
)

// View holds the display state shared by the pipeline and the registry: the
// currently shown extraction and the id of the resume it belongs to (empty
// for a fresh upload that has not been activated yet).
//
// Writers race only in the "new submission supersedes an old one" sense;
// last write wins and stale pipeline submissions skip the write entirely.
type View struct {
	mu         sync.Mutex
	extraction *models.StructuredExtraction
	selectedID string
}

func NewView() *View {
	return &View{}
}

// Set replaces the displayed extraction, clearing whatever was shown before.
func (v *View) Set(extraction *models.StructuredExtraction, selectedID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.extraction = extraction
	v.selectedID = selectedID
}

// Clear drops the displayed extraction and selection.
func (v *View) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.extraction = nil
	v.selectedID = ""
}

// ClearIfSelected clears the view only when the given resume is the one
// currently displayed. Deleting a non-displayed resume leaves the view
// untouched.
func (v *View) ClearIfSelected(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selectedID == id {
		v.extraction = nil
		v.selectedID = ""
	}
}

// Snapshot returns the current extraction and selection.
func (v *View) Snapshot() (*models.StructuredExtraction, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.extraction, v.selectedID
}
