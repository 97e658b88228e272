package theme

import (
	"context"
	"testing"

	"github.com/opencode-ai/themeshell/internal/loop"
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/opencode-ai/themeshell/internal/scope"
	"github.com/opencode-ai/themeshell/internal/themestate"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type harness struct {
	engine  *Engine
	root    *scope.Root
	loop    *loop.Loop
	storage *themestate.MemoryStorage
	store   *themestate.Store
}

func newHarness(t *testing.T, delegates func(*scope.Root) Delegates) *harness {
	t.Helper()

	root := scope.NewRoot()
	storage := themestate.NewMemoryStorage()
	store := themestate.NewStore(context.Background(), storage, zerolog.Nop())
	l := loop.New()

	var d Delegates
	if delegates != nil {
		d = delegates(root)
	}

	engine, err := New(store, root, l, WithDelegates(d), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	return &harness{engine: engine, root: root, loop: l, storage: storage, store: store}
}

func presets(root *scope.Root) Delegates {
	return PresetDelegates(scope.NewPresetUpdater(root))
}

func noops(*scope.Root) Delegates {
	return Delegates{
		Primary: func(palette.Palette) {},
		Surface: func(palette.Palette) {},
	}
}

func requireRamp(t *testing.T, root *scope.Root, kind palette.Kind, name string) {
	t.Helper()
	entry, ok := palette.Lookup(kind, name)
	require.True(t, ok)
	for _, step := range palette.Steps(kind) {
		require.Equal(t, entry.Palette[step], root.Property(scope.PropertyName(kind, step)), "%s %s", name, step)
	}
	if kind == palette.KindPrimary {
		require.Equal(t, entry.Palette[palette.AccentStep], root.Property(scope.PrimaryColorProperty))
	}
}

func TestNewRequiresDependencies(t *testing.T) {
	root := scope.NewRoot()
	store := themestate.NewStore(context.Background(), themestate.NewMemoryStorage(), zerolog.Nop())

	_, err := New(nil, root, loop.New())
	require.ErrorIs(t, err, ErrStoreRequired)
	_, err = New(store, nil, loop.New())
	require.ErrorIs(t, err, ErrScopeRequired)
	_, err = New(store, root, nil)
	require.ErrorIs(t, err, ErrSchedulerRequired)
}

func TestApplyEveryPrimaryAndSurface(t *testing.T) {
	for _, delegates := range []func(*scope.Root) Delegates{nil, noops, presets} {
		h := newHarness(t, delegates)

		for _, name := range palette.Names(palette.KindPrimary) {
			h.engine.UpdateColors(palette.KindPrimary, name)
			h.loop.RunPending()
			requireRamp(t, h.root, palette.KindPrimary, name)
			require.Equal(t, name, h.engine.Primary())
		}
		for _, name := range palette.Names(palette.KindSurface) {
			h.engine.UpdateColors(palette.KindSurface, name)
			h.loop.RunPending()
			requireRamp(t, h.root, palette.KindSurface, name)
			require.Equal(t, name, h.engine.Surface())
		}
	}
}

func TestFallbackWhenDelegateIsNoop(t *testing.T) {
	h := newHarness(t, noops)

	var got []Propagation
	h.engine.OnPropagation(func(p Propagation) { got = append(got, p) })

	h.engine.UpdateColors(palette.KindPrimary, "emerald")
	h.loop.RunPending()

	requireRamp(t, h.root, palette.KindPrimary, "emerald")
	require.Equal(t, "#10b981", h.root.Property(scope.PrimaryColorProperty))
	require.Equal(t, []Propagation{{Kind: palette.KindPrimary, Name: "emerald", Strategy: StrategyDirect}}, got)
}

func TestDelegateTrustedWhenProbeMoves(t *testing.T) {
	h := newHarness(t, presets)

	var got []Propagation
	h.engine.OnPropagation(func(p Propagation) { got = append(got, p) })

	h.engine.UpdateColors(palette.KindPrimary, "teal")
	h.loop.RunPending()

	require.Equal(t, StrategyDelegate, got[0].Strategy)
	requireRamp(t, h.root, palette.KindPrimary, "teal")
	require.NotContains(t, h.root.CSS(), "!important", "delegate path writes no inline properties")

	// Re-applying the same ramp leaves the probe where it was, which the
	// heuristic reads as "no effect".
	h.engine.UpdateColors(palette.KindPrimary, "teal")
	h.loop.RunPending()
	require.Equal(t, StrategyDirect, got[1].Strategy)
	requireRamp(t, h.root, palette.KindPrimary, "teal")
}

func TestSurfaceProbeNeverMovesAfterFirstWrite(t *testing.T) {
	h := newHarness(t, presets)

	var strategies []Strategy
	h.engine.OnPropagation(func(p Propagation) { strategies = append(strategies, p.Strategy) })

	h.engine.UpdateColors(palette.KindSurface, "zinc")
	h.loop.RunPending()
	h.engine.UpdateColors(palette.KindSurface, "ocean")
	h.loop.RunPending()

	require.Equal(t, []Strategy{StrategyDelegate, StrategyDirect}, strategies)
	requireRamp(t, h.root, palette.KindSurface, "ocean")
}

func TestFallbackHealsMaskedDelegate(t *testing.T) {
	h := newHarness(t, presets)

	// A previous direct write masks the stylesheet the delegate updates.
	h.engine.UpdateColors(palette.KindPrimary, "rose")
	h.loop.RunPending()
	h.engine.UpdateColors(palette.KindPrimary, "rose")
	h.loop.RunPending()

	h.engine.UpdateColors(palette.KindPrimary, "indigo")
	h.loop.RunPending()
	requireRamp(t, h.root, palette.KindPrimary, "indigo")
}

func TestPanickingDelegateFallsBack(t *testing.T) {
	h := newHarness(t, func(*scope.Root) Delegates {
		return Delegates{Primary: func(palette.Palette) { panic("framework exploded") }}
	})

	h.engine.UpdateColors(palette.KindPrimary, "amber")
	h.loop.RunPending()
	requireRamp(t, h.root, palette.KindPrimary, "amber")
}

func TestDelegateCannotMutateCatalog(t *testing.T) {
	h := newHarness(t, func(*scope.Root) Delegates {
		return Delegates{Primary: func(p palette.Palette) { p["500"] = "#000000" }}
	})

	h.engine.UpdateColors(palette.KindPrimary, "emerald")
	h.loop.RunPending()

	entry, _ := palette.Lookup(palette.KindPrimary, "emerald")
	require.Equal(t, "#10b981", entry.Palette["500"])
}

func TestUnknownNameIsNoop(t *testing.T) {
	h := newHarness(t, presets)
	h.engine.UpdateColors(palette.KindPrimary, "emerald")
	h.loop.RunPending()

	beforeState := h.engine.State()
	beforeVars := h.root.Snapshot()
	keys := h.storage.Len()

	h.engine.UpdateColors(palette.KindPrimary, "chartreuse")
	h.engine.UpdateColors(palette.KindSurface, "emerald")
	h.engine.UpdateColors(palette.Kind("accent"), "rose")

	require.False(t, h.engine.Propagating())
	require.Zero(t, h.loop.Pending())
	require.Equal(t, beforeState, h.engine.State())
	require.Equal(t, beforeVars, h.root.Snapshot())
	require.Equal(t, keys, h.storage.Len())
}

func TestReentrantUpdateIsDropped(t *testing.T) {
	calls := 0
	var inner *Engine
	h := newHarness(t, func(root *scope.Root) Delegates {
		return Delegates{Primary: func(p palette.Palette) {
			calls++
			// Simulates the framework triggering another selection while
			// applying this one.
			inner.UpdateColors(palette.KindPrimary, "sky")
		}}
	})
	inner = h.engine

	writes := 0
	stop := h.root.Observe(func(m scope.Mutation) {
		if m.Kind == scope.MutationProperty && m.Name == scope.PrimaryColorProperty {
			writes++
		}
	})
	defer stop()

	h.engine.UpdateColors(palette.KindPrimary, "violet")
	require.True(t, h.engine.Propagating(), "guard stays held until the posted release runs")

	// Still dropped: the release has not run yet.
	h.engine.UpdateColors(palette.KindPrimary, "lime")
	require.Equal(t, "violet", h.engine.Primary())

	h.loop.RunPending()
	require.False(t, h.engine.Propagating())
	require.Equal(t, 1, calls)
	require.Equal(t, 1, writes)
	requireRamp(t, h.root, palette.KindPrimary, "violet")

	h.engine.UpdateColors(palette.KindPrimary, "lime")
	h.loop.RunPending()
	require.Equal(t, 2, calls)
	requireRamp(t, h.root, palette.KindPrimary, "lime")
}

func TestStateSubscriberCannotReenter(t *testing.T) {
	h := newHarness(t, noops)

	h.engine.Subscribe(func(state models.ThemeState) {
		h.engine.UpdateColors(palette.KindSurface, "stone")
	})

	h.engine.UpdateColors(palette.KindPrimary, "pink")
	h.loop.RunPending()

	require.Equal(t, "pink", h.engine.Primary())
	require.Equal(t, models.DefaultSurface, h.engine.Surface())
}

func TestUpdatePersistsSelection(t *testing.T) {
	h := newHarness(t, presets)

	h.engine.UpdateColors(palette.KindPrimary, "navy")
	h.loop.RunPending()
	h.engine.UpdateColors(palette.KindSurface, "cream")
	h.loop.RunPending()
	h.engine.SetDarkMode(false)

	reloaded := themestate.Load(context.Background(), h.storage, zerolog.Nop())
	require.Equal(t, models.ThemeState{Primary: "navy", Surface: "cream", DarkMode: false}, reloaded)
}

func TestDarkMode(t *testing.T) {
	h := newHarness(t, nil)

	h.engine.SetDarkMode(true)
	require.True(t, h.root.HasClass(scope.DefaultDarkClass))
	require.True(t, h.engine.IsDarkMode())

	h.engine.ToggleDarkMode()
	require.False(t, h.root.HasClass(scope.DefaultDarkClass))
	require.False(t, h.engine.IsDarkMode())

	h.engine.ToggleDarkMode()
	require.True(t, h.root.HasClass(scope.DefaultDarkClass))
	require.Zero(t, h.loop.Pending(), "dark mode never schedules work")
}

func TestCustomDarkClass(t *testing.T) {
	root := scope.NewRoot()
	store := themestate.NewStore(context.Background(), themestate.NewMemoryStorage(), zerolog.Nop())
	engine, err := New(store, root, loop.New(), WithDarkClass("theme-dark"), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	engine.SetDarkMode(true)
	require.True(t, root.HasClass("theme-dark"))
	require.False(t, root.HasClass(scope.DefaultDarkClass))
}

func TestInitThemeAppliesStoredSelection(t *testing.T) {
	h := newHarness(t, presets)
	themestate.Save(context.Background(), h.storage,
		models.ThemeState{Primary: "copper", Surface: "ivory", DarkMode: false}, zerolog.Nop())

	store := themestate.NewStore(context.Background(), h.storage, zerolog.Nop())
	engine, err := New(store, h.root, h.loop, WithDelegates(presets(h.root)), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	h.root.AddClass(scope.DefaultDarkClass)
	engine.InitTheme()
	h.loop.RunPending()

	require.False(t, h.root.HasClass(scope.DefaultDarkClass))
	requireRamp(t, h.root, palette.KindPrimary, "copper")
	requireRamp(t, h.root, palette.KindSurface, "ivory")
}

func TestInitThemeIsIdempotent(t *testing.T) {
	for _, delegates := range []func(*scope.Root) Delegates{noops, presets} {
		once := newHarness(t, delegates)
		once.engine.InitTheme()
		once.loop.RunPending()

		drained := newHarness(t, delegates)
		drained.engine.InitTheme()
		drained.loop.RunPending()
		drained.engine.InitTheme()
		drained.loop.RunPending()

		back := newHarness(t, delegates)
		back.engine.InitTheme()
		back.engine.InitTheme()
		back.loop.RunPending()

		require.Equal(t, once.root.Snapshot(), drained.root.Snapshot())
		require.Equal(t, once.root.Snapshot(), back.root.Snapshot())
		require.Equal(t, once.root.Classes(), drained.root.Classes())
		requireRamp(t, drained.root, palette.KindPrimary, models.DefaultPrimary)
		requireRamp(t, back.root, palette.KindSurface, models.DefaultSurface)
	}
}

func TestFacadeSetters(t *testing.T) {
	h := newHarness(t, presets)

	h.engine.SetPrimary("olive")
	h.engine.SetSurface("fog")
	h.engine.SetPrimary("not-a-color")

	require.Equal(t, "olive", h.engine.Primary())
	require.Equal(t, "fog", h.engine.Surface())
	require.Empty(t, h.root.Snapshot(), "setters do not propagate")
	require.Len(t, h.engine.PrimaryColors(), 33)
	require.Len(t, h.engine.Surfaces(), 25)
}
