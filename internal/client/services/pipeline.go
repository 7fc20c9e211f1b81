package services

import (
	"context"
	"sync"
	"time"

	"github.com/dkravets/internhub/internal/client/api"
	"github.com/dkravets/internhub/internal/client/models"
	"github.com/dkravets/internhub/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// StageObserver receives a snapshot of the stage sequence and the index of
// the active stage (models.NoActiveStage when none) after every change.
// It may be invoked from the stage-advancement goroutine and must be safe
// for concurrent use.
type StageObserver func(stages []models.Stage, active int)

// Pipeline turns a validated document into a structured extraction while
// presenting deterministic stage progress to observers.
//
// Stage advancement runs on fixed per-stage delays, independent of the real
// network request; Submit resolves only when the slower of the two finishes.
// This decouples perceived progress granularity from actual network latency.
type Pipeline interface {
	Submit(ctx context.Context, doc models.Document) (*models.StructuredExtraction, error)
	Stages() ([]models.Stage, int)
	SetObserver(fn StageObserver)
}

type pipeline struct {
	api           api.Client
	view          *View
	profile       ProfileSyncer
	log           logging.Logger
	stageInterval time.Duration

	mu         sync.Mutex
	stages     []models.Stage
	active     int
	submission string
	observer   StageObserver
}

func NewPipeline(client api.Client, view *View, profile ProfileSyncer, log logging.Logger, stageInterval time.Duration) Pipeline {
	if log == nil {
		log = logging.NewNop()
	}
	return &pipeline{
		api:           client,
		view:          view,
		profile:       profile,
		log:           log.With("component", "pipeline"),
		stageInterval: stageInterval,
		stages:        models.DefaultStages(),
		active:        models.NoActiveStage,
	}
}

func (p *pipeline) SetObserver(fn StageObserver) {
	p.mu.Lock()
	p.observer = fn
	p.mu.Unlock()
}

// Submit validates doc, then runs the network parse and the stage sequence
// concurrently and waits for both. On success the new extraction replaces
// the displayed one and profile sync is dispatched without being awaited; a
// sync failure never fails the submission. On failure all stages reset, the
// active indicator clears, and the previously displayed extraction is left
// untouched.
//
// A newer Submit supersedes this one: the superseded call still returns its
// result to the caller, but skips the display write so the last-submitted
// call wins.
func (p *pipeline) Submit(ctx context.Context, doc models.Document) (*models.StructuredExtraction, error) {
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	sub := uuid.NewString()
	p.begin(sub)
	p.log.Info(ctx, "submitting document", "file", doc.Name, "size", doc.Size, "submission", sub)

	var (
		result   *models.ParseResult
		parseErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := p.api.Parse(gctx, doc)
		if err != nil {
			parseErr = err
			return err
		}
		result = r
		return nil
	})
	g.Go(func() error {
		return p.advanceStages(gctx, sub)
	})

	if err := g.Wait(); err != nil {
		p.fail(sub)
		p.log.Warn(ctx, "submission failed", "file", doc.Name, "error", err)
		if parseErr != nil {
			return nil, parseErr
		}
		return nil, err
	}

	extraction := result.StructuredData
	if p.finish(sub) {
		p.view.Set(&extraction, "")
		p.dispatchProfileSync(&extraction)
	}
	return &extraction, nil
}

// dispatchProfileSync runs profile propagation detached from the caller.
// Failures are logged only; the pipeline already succeeded.
func (p *pipeline) dispatchProfileSync(extraction *models.StructuredExtraction) {
	go func() {
		ctx := context.Background()
		if err := p.profile.Sync(ctx, extraction); err != nil {
			p.log.Warn(ctx, "profile sync degraded", "error", err)
		}
	}()
}

// Stages returns a snapshot of the stage sequence and the active index.
func (p *pipeline) Stages() ([]models.Stage, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Stage, len(p.stages))
	copy(out, p.stages)
	return out, p.active
}

func (p *pipeline) begin(sub string) {
	p.mu.Lock()
	p.submission = sub
	p.stages = models.DefaultStages()
	p.active = 0
	p.mu.Unlock()
	p.notify()
}

// advanceStages completes stages in order on the fixed interval. It stops
// quietly when superseded by a newer submission.
func (p *pipeline) advanceStages(ctx context.Context, sub string) error {
	timer := time.NewTimer(p.stageInterval)
	defer timer.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		current, done := p.completeStage(sub, i)
		if !current || done {
			return nil
		}
		timer.Reset(p.stageInterval)
	}
}

// completeStage marks stage i done and advances the active indicator.
// It reports whether sub is still the current submission and whether the
// sequence is finished.
func (p *pipeline) completeStage(sub string, i int) (current bool, done bool) {
	p.mu.Lock()
	if p.submission != sub || i >= len(p.stages) {
		p.mu.Unlock()
		return false, true
	}
	p.stages[i].Completed = true
	if i+1 < len(p.stages) {
		p.active = i + 1
		done = false
	} else {
		p.active = models.NoActiveStage
		done = true
	}
	p.mu.Unlock()
	p.notify()
	return true, done
}

// fail resets the sequence to all-incomplete and clears the active
// indicator. The displayed extraction is deliberately not touched.
func (p *pipeline) fail(sub string) {
	p.mu.Lock()
	if p.submission != sub {
		p.mu.Unlock()
		return
	}
	p.stages = models.DefaultStages()
	p.active = models.NoActiveStage
	p.mu.Unlock()
	p.notify()
}

// finish clears the active indicator and reports whether sub still owns the
// display.
func (p *pipeline) finish(sub string) bool {
	p.mu.Lock()
	if p.submission != sub {
		p.mu.Unlock()
		return false
	}
	p.active = models.NoActiveStage
	p.mu.Unlock()
	p.notify()
	return true
}

func (p *pipeline) notify() {
	p.mu.Lock()
	fn := p.observer
	stages := make([]models.Stage, len(p.stages))
	copy(stages, p.stages)
	active := p.active
	p.mu.Unlock()
	if fn != nil {
		fn(stages, active)
	}
}
