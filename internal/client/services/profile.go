package services

import (
	"context"
	"fmt"

	"github.com/dkravets/internhub/internal/client/api"
	"github.com/dkravets/internhub/internal/client/models"
	"github.com/dkravets/internhub/internal/logging"
)

// ProfileSyncer propagates extracted skills and experience into the student
// profile. Sync failures are soft: callers log them and report overall
// success with a degraded notice, because the extraction itself succeeded
// independently of profile propagation.
type ProfileSyncer interface {
	Sync(ctx context.Context, extraction *models.StructuredExtraction) error
}

type profileSyncer struct {
	api api.Client
	log logging.Logger
}

func NewProfileSyncer(client api.Client, log logging.Logger) ProfileSyncer {
	if log == nil {
		log = logging.NewNop()
	}
	return &profileSyncer{api: client, log: log.With("component", "profile-sync")}
}

// Sync sends allSkills and totalExperienceYears to the profile endpoint.
// An extraction without skills is a no-op, not an error.
func (s *profileSyncer) Sync(ctx context.Context, extraction *models.StructuredExtraction) error {
	if extraction == nil || len(extraction.AllSkills) == 0 {
		return nil
	}

	if err := s.api.UpdateProfile(ctx, extraction.AllSkills, extraction.TotalExperienceYears); err != nil {
		s.log.Warn(ctx, "profile update rejected", "skills", len(extraction.AllSkills), "error", err)
		return fmt.Errorf("updating profile: %w", err)
	}

	s.log.Info(ctx, "profile updated",
		"skills", len(extraction.AllSkills),
		"experience_years", extraction.TotalExperienceYears,
	)
	return nil
}
