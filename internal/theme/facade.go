package theme

import (
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
)

// PrimaryColors returns the primary catalog in display order.
func (e *Engine) PrimaryColors() []palette.Entry {
	return palette.Entries(palette.KindPrimary)
}

// Surfaces returns the surface catalog in display order.
func (e *Engine) Surfaces() []palette.Entry {
	return palette.Entries(palette.KindSurface)
}

// State returns a copy of the current selection.
func (e *Engine) State() models.ThemeState {
	return e.store.State()
}

// IsDarkMode reports whether dark mode is selected.
func (e *Engine) IsDarkMode() bool {
	return e.store.State().DarkMode
}

// Primary returns the selected primary name.
func (e *Engine) Primary() string {
	return e.store.State().Primary
}

// Surface returns the selected surface name.
func (e *Engine) Surface() string {
	return e.store.State().Surface
}

// SetPrimary stores a primary name without propagating it. Unknown names are
// ignored.
func (e *Engine) SetPrimary(name string) {
	if palette.Has(palette.KindPrimary, name) {
		e.store.SetPrimary(name)
	}
}

// SetSurface stores a surface name without propagating it. Unknown names are
// ignored.
func (e *Engine) SetSurface(name string) {
	if palette.Has(palette.KindSurface, name) {
		e.store.SetSurface(name)
	}
}

// Subscribe registers fn to run after every state change and returns a
// function that removes it.
func (e *Engine) Subscribe(fn func(models.ThemeState)) func() {
	return e.store.Subscribe(fn)
}

// Propagating reports whether the recursion guard is held.
func (e *Engine) Propagating() bool {
	return e.guard.Held()
}
