package services

import (
	"context"
	"sync"

	"github.com/dkravets/internhub/internal/client/api"
	"github.com/dkravets/internhub/internal/client/models"
)

// fakeAPI satisfies api.Client through the embedded interface; tests
// override behavior per call via the function fields and inspect the
// recorded calls afterwards.
type fakeAPI struct {
	api.Client

	mu sync.Mutex

	parseFn         func(ctx context.Context, doc models.Document) (*models.ParseResult, error)
	listFn          func(ctx context.Context) ([]models.ResumeRecord, error)
	activateFn      func(ctx context.Context, id string) error
	parsedDataFn    func(ctx context.Context, id string) (*models.ParseResult, error)
	deleteFn        func(ctx context.Context, id string) error
	updateProfileFn func(ctx context.Context, skills []string, years float64) error

	parseCalls      int
	listCalls       int
	activatedIDs    []string
	parsedDataIDs   []string
	deletedIDs      []string
	profileSkills   [][]string
	profileYears    []float64
	profileCalls    int
}

func (f *fakeAPI) Parse(ctx context.Context, doc models.Document) (*models.ParseResult, error) {
	f.mu.Lock()
	f.parseCalls++
	fn := f.parseFn
	f.mu.Unlock()
	if fn == nil {
		return &models.ParseResult{}, nil
	}
	return fn(ctx, doc)
}

func (f *fakeAPI) ListResumes(ctx context.Context) ([]models.ResumeRecord, error) {
	f.mu.Lock()
	f.listCalls++
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx)
}

func (f *fakeAPI) Activate(ctx context.Context, id string) error {
	f.mu.Lock()
	f.activatedIDs = append(f.activatedIDs, id)
	fn := f.activateFn
	f.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(ctx, id)
}

func (f *fakeAPI) ParsedData(ctx context.Context, id string) (*models.ParseResult, error) {
	f.mu.Lock()
	f.parsedDataIDs = append(f.parsedDataIDs, id)
	fn := f.parsedDataFn
	f.mu.Unlock()
	if fn == nil {
		return &models.ParseResult{}, nil
	}
	return fn(ctx, id)
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	f.deletedIDs = append(f.deletedIDs, id)
	fn := f.deleteFn
	f.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(ctx, id)
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, skills []string, years float64) error {
	f.mu.Lock()
	f.profileCalls++
	f.profileSkills = append(f.profileSkills, skills)
	f.profileYears = append(f.profileYears, years)
	fn := f.updateProfileFn
	f.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(ctx, skills, years)
}

func (f *fakeAPI) snapshot() fakeAPICalls {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fakeAPICalls{
		parseCalls:    f.parseCalls,
		listCalls:     f.listCalls,
		activatedIDs:  append([]string(nil), f.activatedIDs...),
		parsedDataIDs: append([]string(nil), f.parsedDataIDs...),
		deletedIDs:    append([]string(nil), f.deletedIDs...),
		profileCalls:  f.profileCalls,
	}
}

type fakeAPICalls struct {
	parseCalls    int
	listCalls     int
	activatedIDs  []string
	parsedDataIDs []string
	deletedIDs    []string
	profileCalls  int
}

// fakeSyncer records Sync invocations and signals each one on done so tests
// can wait for fire-and-forget dispatches.
type fakeSyncer struct {
	mu    sync.Mutex
	calls []*models.StructuredExtraction
	err   error
	done  chan struct{}
}

func newFakeSyncer() *fakeSyncer {
	return &fakeSyncer{done: make(chan struct{}, 8)}
}

func (f *fakeSyncer) Sync(_ context.Context, extraction *models.StructuredExtraction) error {
	f.mu.Lock()
	f.calls = append(f.calls, extraction)
	err := f.err
	f.mu.Unlock()
	f.done <- struct{}{}
	return err
}

func (f *fakeSyncer) synced() []*models.StructuredExtraction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.StructuredExtraction(nil), f.calls...)
}
