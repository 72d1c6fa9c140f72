// Package app wires configuration, storage, lifecycle and the HTTP surface
// into a runnable server.
package app

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/Eloura74/Backbone/internal/retention"
	"github.com/Eloura74/Backbone/pkg/api/handlers"
	"github.com/Eloura74/Backbone/pkg/config"
	"github.com/Eloura74/Backbone/pkg/lifecycle"
	"github.com/Eloura74/Backbone/pkg/render"
	"github.com/Eloura74/Backbone/pkg/state"
	"github.com/Eloura74/Backbone/pkg/store"
	"github.com/Eloura74/Backbone/pkg/validation"

	"net/http"
)

// App encapsulates the server components and lifecycle.
type App struct {
	eff       config.EffectiveConfigResult
	version   string
	commit    string
	buildDate string

	handlers *handlers.API

	srv             *http.Server
	cancelRetention context.CancelFunc
}

// New initializes resources that do not require a running context: env
// file, validation rules, the store and the lifecycle manager. It does not
// start the HTTP server or the retention sweep; call Run for those.
func New(eff config.EffectiveConfigResult, version, commit, buildDate string) (*App, error) {
	_ = godotenv.Load(".env")

	// validate effective config early and fail fast
	if err := validateConfig(eff); err != nil {
		return nil, err
	}

	initValidation(eff)

	if err := state.Init(eff.DBPath); err != nil {
		return nil, fmt.Errorf("failed to prepare runtime layout at %s: %w", eff.DBPath, err)
	}
	if err := store.Open(state.PathsVar.Store); err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", state.PathsVar.Store, err)
	}

	mgr := lifecycle.New(store.InboxAccessor{}, store.MemoryAccessor{})
	a := &App{
		eff:       eff,
		version:   version,
		commit:    commit,
		buildDate: buildDate,
		handlers:  handlers.New(mgr, render.CatalogRenderer{}),
	}
	return a, nil
}

// Run starts the retention sweep (if enabled) and the HTTP server, and
// blocks until ctx is canceled or a fatal server error occurs.
func (a *App) Run(ctx context.Context) error {
	cancel, err := retention.Start(ctx, a.eff)
	if err != nil {
		return err
	}
	a.cancelRetention = cancel

	a.printBanner()

	errCh := a.startHTTP(ctx)

	select {
	case <-ctx.Done():
		a.shutdown()
		return nil
	case err := <-errCh:
		a.shutdown()
		return err
	}
}

// shutdown stops the retention sweep, drains the HTTP server and closes the
// store.
func (a *App) shutdown() {
	if a.cancelRetention != nil {
		a.cancelRetention()
	}
	if a.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = a.srv.Shutdown(ctx)
	}
	_ = store.Close()
}

// initValidation builds content limits from config and sets them globally.
func initValidation(eff config.EffectiveConfigResult) {
	vr := validation.Rules{
		MaxContentLen:  eff.Config.Validation.MaxContentLen,
		MaxDecisionLen: eff.Config.Validation.MaxDecisionLen,
	}
	validation.SetRules(vr)
}
