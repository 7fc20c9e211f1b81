package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dkravets/internhub/internal/client/api"
	"github.com/dkravets/internhub/internal/client/models"
	"github.com/dkravets/internhub/internal/logging"
)

// Registry manages the user's uploaded resumes: listing, activation with
// optimistic-then-reconciled updates, and deletion. No registry error is
// fatal; every operation is recoverable by retrying.
type Registry interface {
	// List fetches the resume set from the server and replaces the
	// in-memory view.
	List(ctx context.Context) ([]models.ResumeRecord, error)

	// Activate optimistically marks id active, confirms with the server
	// (rolling back by refresh on failure), loads the associated
	// extraction, and triggers profile sync.
	Activate(ctx context.Context, id string) error

	// Remove deletes a resume. The caller is responsible for passing a
	// confirmation gate first; Remove itself does not prompt.
	Remove(ctx context.Context, id string) error

	// Records returns the current in-memory view.
	Records() []models.ResumeRecord
}

type resumeRegistry struct {
	api     api.Client
	view    *View
	profile ProfileSyncer
	log     logging.Logger

	mu      sync.Mutex
	records []models.ResumeRecord
}

func NewRegistry(client api.Client, view *View, profile ProfileSyncer, log logging.Logger) Registry {
	if log == nil {
		log = logging.NewNop()
	}
	return &resumeRegistry{
		api:     client,
		view:    view,
		profile: profile,
		log:     log.With("component", "registry"),
	}
}

func (r *resumeRegistry) List(ctx context.Context) ([]models.ResumeRecord, error) {
	records, err := r.api.ListResumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}

	// The server list is the source of truth; still guard the at-most-one-
	// active invariant in case it ever regresses upstream.
	seenActive := false
	for i := range records {
		if !records[i].IsActive {
			continue
		}
		if seenActive {
			r.log.Warn(ctx, "server returned multiple active resumes", "id", records[i].ID)
			records[i].IsActive = false
			continue
		}
		seenActive = true
	}

	r.mu.Lock()
	r.records = records
	r.mu.Unlock()

	return r.Records(), nil
}

// Activate performs the three-step activation flow. Step failures are
// reported together but do not abort later steps: a stale activation state
// is recoverable (rollback by refresh), an unfetched extraction is not.
func (r *resumeRegistry) Activate(ctx context.Context, id string) error {
	// Optimistic flip before the network call, so the view never shows two
	// active records and never lags the user's click.
	r.markActive(id)

	var errs []error

	if err := r.api.Activate(ctx, id); err != nil {
		// Rollback by refresh rather than un-toggling: other mutations may
		// have landed since the optimistic change.
		if _, lerr := r.List(ctx); lerr != nil {
			r.log.Warn(ctx, "rollback refresh failed", "id", id, "error", lerr)
		}
		errs = append(errs, fmt.Errorf("activating resume: %w", err))
	}

	result, err := r.api.ParsedData(ctx, id)
	if err != nil {
		errs = append(errs, fmt.Errorf("loading extraction: %w", err))
	} else {
		extraction := result.StructuredData
		r.view.Set(&extraction, id)
		r.dispatchProfileSync(&extraction)
	}

	return errors.Join(errs...)
}

func (r *resumeRegistry) Remove(ctx context.Context, id string) error {
	var errs []error

	if err := r.api.Delete(ctx, id); err != nil {
		errs = append(errs, fmt.Errorf("deleting resume: %w", err))
	} else {
		r.view.ClearIfSelected(id)
	}

	// Always reconcile with the source of truth, on success and failure
	// alike.
	if _, err := r.List(ctx); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (r *resumeRegistry) Records() []models.ResumeRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ResumeRecord, len(r.records))
	copy(out, r.records)
	return out
}

// markActive flips the in-memory view: the target becomes active, every
// sibling inactive.
func (r *resumeRegistry) markActive(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		r.records[i].IsActive = r.records[i].ID == id
	}
}

func (r *resumeRegistry) dispatchProfileSync(extraction *models.StructuredExtraction) {
	go func() {
		ctx := context.Background()
		if err := r.profile.Sync(ctx, extraction); err != nil {
			r.log.Warn(ctx, "profile sync degraded", "error", err)
		}
	}()
}
