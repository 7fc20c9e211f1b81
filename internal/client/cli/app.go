// Package cli implements the interactive portal front end: a small REPL
// over the orchestration services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dkravets/internhub/internal/client/api"
	"github.com/dkravets/internhub/internal/client/config"
	"github.com/dkravets/internhub/internal/client/repositories/uistate"
	"github.com/dkravets/internhub/internal/client/services"
	"github.com/dkravets/internhub/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	api      api.Client
	view     *services.View
	pipeline services.Pipeline
	registry services.Registry
	profile  services.ProfileSyncer
	bus      *services.Bus
	store    uistate.Store
	sections []*services.Section

	db       *sql.DB
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNop()
	}

	var store uistate.Store
	var db *sql.DB
	if c.UIStateDBPath == "" {
		store = uistate.NewMemoryStore()
	} else {
		var err error
		db, err = uistate.InitDatabase(ctx, c.UIStateDBPath)
		if err != nil {
			log.Warn(ctx, "ui state db unavailable, falling back to memory", "error", err)
			store = uistate.NewMemoryStore()
		} else {
			store = uistate.NewSQLiteStore(db)
		}
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log)
	view := services.NewView()
	profile := services.NewProfileSyncer(apiClient, log)
	pipeline := services.NewPipeline(apiClient, view, profile, log, c.StageInterval)
	registry := services.NewRegistry(apiClient, view, profile, log)
	bus := services.NewBus()

	a := &App{
		config:   c,
		log:      log,
		api:      apiClient,
		view:     view,
		pipeline: pipeline,
		registry: registry,
		profile:  profile,
		bus:      bus,
		store:    store,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.mountSections(ctx)
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	for _, s := range a.sections {
		s.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
	_ = a.api.Close()
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
