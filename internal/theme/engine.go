// Package theme propagates the selected palettes into the rendering scope.
package theme

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/themeshell/internal/logging"
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/opencode-ai/themeshell/internal/scope"
	"github.com/rs/zerolog"
)

// Scope is the rendering scope the engine writes to. *scope.Root implements it.
type Scope interface {
	Property(name string) string
	SetProperty(name, value string)
	AddClass(class string)
	RemoveClass(class string)
}

// StateStore is the persisted theme state. *themestate.Store implements it.
type StateStore interface {
	State() models.ThemeState
	SetPrimary(name string)
	SetSurface(name string)
	SetDarkMode(value bool)
	Subscribe(fn func(models.ThemeState)) func()
}

// Scheduler runs a task after the current one has finished. *loop.Loop
// implements it.
type Scheduler interface {
	Post(fn func())
}

// PaletteUpdater is a delegated, best-effort palette update function. It may
// do nothing at all.
type PaletteUpdater func(palette.Palette)

// Delegates holds one updater per catalog kind. Nil entries are no-ops.
type Delegates struct {
	Primary PaletteUpdater
	Surface PaletteUpdater
}

// PresetDelegates wires the UI framework's preset updater.
func PresetDelegates(u *scope.PresetUpdater) Delegates {
	return Delegates{
		Primary: u.UpdatePrimaryPalette,
		Surface: u.UpdateSurfacePalette,
	}
}

// Strategy names which write path made a propagation visible.
type Strategy string

const (
	StrategyDelegate Strategy = "delegate"
	StrategyDirect   Strategy = "direct"
)

// Propagation describes one completed palette write.
type Propagation struct {
	Kind     palette.Kind
	Name     string
	Strategy Strategy
}

// Engine errors.
var (
	ErrStoreRequired     = errors.New("theme state store is required")
	ErrScopeRequired     = errors.New("rendering scope is required")
	ErrSchedulerRequired = errors.New("scheduler is required")
)

// Engine owns the theme state, the recursion guard and the rendering scope.
// It is confined to a single scheduler; callers on other goroutines must go
// through that scheduler.
type Engine struct {
	store     StateStore
	scope     Scope
	scheduler Scheduler
	delegates Delegates
	darkClass string
	logger    zerolog.Logger

	guard     Guard
	observers []func(Propagation)
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelegates sets the delegated update functions.
func WithDelegates(d Delegates) Option {
	return func(e *Engine) {
		e.delegates = d
	}
}

// WithDarkClass overrides the root class that selects dark mode.
func WithDarkClass(class string) Option {
	return func(e *Engine) {
		if class != "" {
			e.darkClass = class
		}
	}
}

// WithLogger overrides the engine logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New constructs an Engine. It does not touch the scope; call InitTheme.
func New(store StateStore, sc Scope, scheduler Scheduler, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if sc == nil {
		return nil, ErrScopeRequired
	}
	if scheduler == nil {
		return nil, ErrSchedulerRequired
	}

	e := &Engine{
		store:     store,
		scope:     sc,
		scheduler: scheduler,
		darkClass: scope.DefaultDarkClass,
		logger:    logging.Component("theme"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// OnPropagation registers fn to run after every completed propagation.
func (e *Engine) OnPropagation(fn func(Propagation)) {
	e.observers = append(e.observers, fn)
}

// UpdateColors selects name in the kind catalog and propagates it.
//
// While a propagation is in flight, calls are dropped rather than queued.
// Unknown kinds or names are a silent no-op. The guard is released by a task
// posted to the scheduler, so anything the writes trigger synchronously has
// settled before the next propagation is accepted.
func (e *Engine) UpdateColors(kind palette.Kind, name string) {
	if e.guard.Held() {
		e.logger.Debug().Str("kind", string(kind)).Str("name", name).Msg("propagation in flight, update dropped")
		return
	}

	entry, ok := palette.Lookup(kind, name)
	if !ok {
		e.logger.Debug().Str("kind", string(kind)).Str("name", name).Msg("unknown palette, ignoring")
		return
	}

	e.guard.TryAcquire()
	defer e.scheduler.Post(e.guard.Release)

	switch kind {
	case palette.KindPrimary:
		e.store.SetPrimary(entry.Name)
	case palette.KindSurface:
		e.store.SetSurface(entry.Name)
	}

	p := Propagation{
		Kind:     kind,
		Name:     entry.Name,
		Strategy: e.propagate(kind, entry.Palette),
	}

	e.logger.Debug().
		Str("kind", string(p.Kind)).
		Str("name", p.Name).
		Str("strategy", string(p.Strategy)).
		Msg("palette applied")

	for _, fn := range e.observers {
		fn(p)
	}
}

// propagate tries the delegate and falls back to direct writes when the probe
// property did not move. The probe is a single-variable heuristic: a delegate
// that applies only part of a ramp but moves the probe is trusted.
func (e *Engine) propagate(kind palette.Kind, p palette.Palette) Strategy {
	probe := probeProperty(kind)

	before := e.scope.Property(probe)
	e.delegate(kind, p)
	after := e.scope.Property(probe)

	if after != "" && after != before {
		return StrategyDelegate
	}

	e.writeDirect(kind, p)
	return StrategyDirect
}

func (e *Engine) delegate(kind palette.Kind, p palette.Palette) {
	var fn PaletteUpdater
	switch kind {
	case palette.KindPrimary:
		fn = e.delegates.Primary
	case palette.KindSurface:
		fn = e.delegates.Surface
	}
	if fn == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn().Str("kind", string(kind)).Str("panic", fmt.Sprint(r)).Msg("delegated palette update panicked")
		}
	}()

	ramp := make(palette.Palette, len(p))
	for step, value := range p {
		ramp[step] = value
	}
	fn(ramp)
}

func (e *Engine) writeDirect(kind palette.Kind, p palette.Palette) {
	for _, step := range palette.Steps(kind) {
		if value, ok := p[step]; ok {
			e.scope.SetProperty(scope.PropertyName(kind, step), value)
		}
	}
	if kind == palette.KindPrimary {
		e.scope.SetProperty(scope.PrimaryColorProperty, p[palette.AccentStep])
	}
}

func probeProperty(kind palette.Kind) string {
	if kind == palette.KindPrimary {
		return scope.PrimaryColorProperty
	}
	return scope.PropertyName(palette.KindSurface, "0")
}

// SetDarkMode stores value and syncs the root dark class.
func (e *Engine) SetDarkMode(value bool) {
	e.store.SetDarkMode(value)
	e.syncDarkClass(value)
}

// ToggleDarkMode flips dark mode.
func (e *Engine) ToggleDarkMode() {
	e.SetDarkMode(!e.store.State().DarkMode)
}

func (e *Engine) syncDarkClass(dark bool) {
	if dark {
		e.scope.AddClass(e.darkClass)
	} else {
		e.scope.RemoveClass(e.darkClass)
	}
}

// InitTheme applies the stored selection to the scope: the dark class, then
// the primary ramp, then the surface ramp. The surface ramp is posted so it
// runs after the primary propagation has released the guard.
func (e *Engine) InitTheme() {
	state := e.store.State()
	e.syncDarkClass(state.DarkMode)
	e.UpdateColors(palette.KindPrimary, state.Primary)
	e.scheduler.Post(func() {
		e.UpdateColors(palette.KindSurface, e.store.State().Surface)
	})
}
