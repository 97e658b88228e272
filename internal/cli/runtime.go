package cli

import (
	"context"
	"fmt"

	"github.com/opencode-ai/themeshell/internal/db"
	"github.com/opencode-ai/themeshell/internal/events"
	"github.com/opencode-ai/themeshell/internal/logging"
	"github.com/opencode-ai/themeshell/internal/loop"
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/opencode-ai/themeshell/internal/scope"
	"github.com/opencode-ai/themeshell/internal/theme"
	"github.com/opencode-ai/themeshell/internal/themestate"
	"github.com/rs/zerolog"
)

// runtime is the in-process theme stack: storage, state, scope, loop and
// engine, with the stored selection already applied.
type runtime struct {
	db     *db.DB
	events *db.EventRepository
	store  *themestate.Store
	root   *scope.Root
	loop   *loop.Loop
	engine *theme.Engine
	logger zerolog.Logger

	last *theme.Propagation
}

func openDatabase(ctx context.Context) (*db.DB, error) {
	cfg, err := requireConfig()
	if err != nil {
		return nil, err
	}

	var database *db.DB
	if cfg.Database.Path == ":memory:" {
		database, err = db.OpenInMemory()
	} else {
		database, err = db.Open(cfg.Database.Path)
	}
	if err != nil {
		return nil, err
	}

	if _, err := database.MigrateUp(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := requireConfig()
	if err != nil {
		return nil, err
	}

	database, err := openDatabase(ctx)
	if err != nil {
		return nil, err
	}

	store := themestate.NewStore(ctx, db.NewSettingsRepository(database), logging.Component("themestate"))
	root := scope.NewRoot()
	l := loop.New()

	opts := []theme.Option{theme.WithDarkClass(cfg.Theme.DarkClass)}
	if cfg.Theme.Delegate {
		opts = append(opts, theme.WithDelegates(theme.PresetDelegates(scope.NewPresetUpdater(root))))
	}
	engine, err := theme.New(store, root, l, opts...)
	if err != nil {
		database.Close()
		return nil, err
	}

	rt := &runtime{
		db:     database,
		events: db.NewEventRepository(database),
		store:  store,
		root:   root,
		loop:   l,
		engine: engine,
		logger: logging.Component("cli"),
	}

	engine.InitTheme()
	l.RunPending()

	// Registered after InitTheme so restoring the stored selection is not
	// recorded as a change.
	engine.OnPropagation(func(p theme.Propagation) {
		rt.last = &p
	})
	if cfg.Theme.History {
		rt.recordHistory()
	}

	return rt, nil
}

func (rt *runtime) recordHistory() {
	rt.engine.OnPropagation(func(p theme.Propagation) {
		if err := events.LogPaletteApplied(context.Background(), rt.events, string(p.Kind), p.Name, string(p.Strategy)); err != nil {
			rt.logger.Warn().Err(err).Msg("failed to record palette event")
		}
	})

	dark := rt.store.State().DarkMode
	rt.store.Subscribe(func(state models.ThemeState) {
		if state.DarkMode == dark {
			return
		}
		dark = state.DarkMode
		if err := events.LogDarkModeChanged(context.Background(), rt.events, dark); err != nil {
			rt.logger.Warn().Err(err).Msg("failed to record dark mode event")
		}
	})
}

// logRestored records the selection a long-lived session started with.
func (rt *runtime) logRestored(ctx context.Context) {
	cfg, err := requireConfig()
	if err != nil || !cfg.Theme.History {
		return
	}
	if err := events.LogStateRestored(ctx, rt.events, rt.store.State()); err != nil {
		rt.logger.Warn().Err(err).Msg("failed to record restored state")
	}
}

// apply propagates name and settles the loop. The returned strategy is empty
// when the engine dropped the update.
func (rt *runtime) apply(kind palette.Kind, name string) string {
	rt.last = nil
	rt.engine.UpdateColors(kind, name)
	rt.loop.RunPending()
	if rt.last == nil {
		return ""
	}
	return string(rt.last.Strategy)
}

func (rt *runtime) Close() error {
	return rt.db.Close()
}
