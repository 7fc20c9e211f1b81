// Package api wraps the remote InternHub service. The Client interface is
// the seam the orchestration services depend on; the HTTP implementation
// lives in httpclient.go.
package api

import (
	"context"

	"github.com/dkravets/internhub/internal/client/models"
)

type Client interface {
	Close() error

	// Login obtains a bearer token for the authorized endpoints.
	Login(ctx context.Context, email, password string) error

	// Store uploads a document for storage and background parsing without
	// returning structured data (the simple upload flow).
	Store(ctx context.Context, doc models.Document) error

	// Parse uploads a document and returns its structured extraction.
	Parse(ctx context.Context, doc models.Document) (*models.ParseResult, error)

	// ListResumes returns the caller's uploaded resumes.
	ListResumes(ctx context.Context) ([]models.ResumeRecord, error)

	// Activate marks the given resume active; the server deactivates all
	// siblings.
	Activate(ctx context.Context, id string) error

	// ParsedData returns the stored extraction for an uploaded resume.
	ParsedData(ctx context.Context, id string) (*models.ParseResult, error)

	// Delete removes an uploaded resume.
	Delete(ctx context.Context, id string) error

	// UpdateProfile propagates derived fields into the student profile.
	UpdateProfile(ctx context.Context, skills []string, totalExperienceYears float64) error
}
