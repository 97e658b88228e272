package scope

import (
	"github.com/opencode-ai/themeshell/internal/palette"
)

// PropertyName returns the custom property carrying one step of a ramp,
// e.g. --p-primary-500.
func PropertyName(kind palette.Kind, step palette.Step) string {
	return "--p-" + string(kind) + "-" + string(step)
}

// PrimaryColorProperty is the canonical current-accent property.
const PrimaryColorProperty = "--p-primary-color"

// PresetUpdater is the UI framework's own palette update path: it rewrites
// the generated stylesheet rather than inline properties, so anything already
// set inline on the root masks it.
type PresetUpdater struct {
	root *Root
}

// NewPresetUpdater returns an updater writing into root's stylesheet.
func NewPresetUpdater(root *Root) *PresetUpdater {
	return &PresetUpdater{root: root}
}

// UpdatePrimaryPalette regenerates the primary tokens.
func (u *PresetUpdater) UpdatePrimaryPalette(p palette.Palette) {
	u.write(palette.KindPrimary, p)
	if accent, ok := p[palette.AccentStep]; ok {
		u.root.SetRule(SelectorRoot, PrimaryColorProperty, accent)
	}
}

// UpdateSurfacePalette regenerates the surface tokens.
func (u *PresetUpdater) UpdateSurfacePalette(p palette.Palette) {
	u.write(palette.KindSurface, p)
}

func (u *PresetUpdater) write(kind palette.Kind, p palette.Palette) {
	for _, step := range palette.Steps(kind) {
		value, ok := p[step]
		if !ok {
			continue
		}
		u.root.SetRule(SelectorRoot, PropertyName(kind, step), value)
	}
}
