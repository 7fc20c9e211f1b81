package services

import (
	"path/filepath"
	"strings"

	"github.com/dkravets/internhub/internal/client/models"
)

// MaxDocumentSize is the upload cap applied before any network call.
const MaxDocumentSize = 10 << 20 // 10 MiB

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".txt":  {},
}

var allowedMimeTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
}

// Rejection is returned by ValidateDocument for files that must not be
// uploaded. It is always recoverable: the user picks another file.
type Rejection struct {
	Reason string
}

func (r *Rejection) Error() string { return r.Reason }

// ValidateDocument checks a candidate file's type and size. It is pure and
// performs no I/O; every upload path (file picker, drag-and-drop, CLI
// argument) must funnel through it before touching the network.
//
// A file is accepted when either its extension or its declared MIME type is
// in the allowed set. Browsers are unreliable about one or the other, so
// requiring both would reject valid files.
func ValidateDocument(doc models.Document) error {
	ext := strings.ToLower(filepath.Ext(doc.Name))
	_, extOK := allowedExtensions[ext]
	_, mimeOK := allowedMimeTypes[doc.MimeType]
	if !extOK && !mimeOK {
		return &Rejection{Reason: "Invalid file type. Please upload a PDF, DOC, DOCX, or TXT file."}
	}

	if doc.Size > MaxDocumentSize {
		return &Rejection{Reason: "File size must be less than 10MB."}
	}

	return nil
}
