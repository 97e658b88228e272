// Package styles derives the picker's lipgloss styles from the active theme.
package styles

import (
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
)

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles tokens with the selection they were derived from.
type Theme struct {
	Name   string
	Dark   bool
	Tokens ThemeTokens
}

// DefaultTheme is derived from the default selection.
var DefaultTheme = FromState(models.DefaultThemeState())

// FromState maps a theme selection onto TUI roles the same way the web
// stylesheet does: surface steps for chrome, primary steps for accents.
func FromState(state models.ThemeState) Theme {
	primary := ramp(palette.KindPrimary, state.Primary, models.DefaultPrimary)
	surface := ramp(palette.KindSurface, state.Surface, models.DefaultSurface)

	tokens := ThemeTokens{
		Success: step(palette.KindPrimary, "green", "500"),
		Warning: step(palette.KindPrimary, "amber", "500"),
		Error:   step(palette.KindPrimary, "crimson", "500"),
		Info:    step(palette.KindPrimary, "sky", "500"),
	}

	if state.DarkMode {
		tokens.Background = surface["950"]
		tokens.Panel = surface["900"]
		tokens.Text = surface["0"]
		tokens.TextMuted = surface["400"]
		tokens.Border = surface["700"]
		tokens.Accent = primary["400"]
		tokens.Focus = primary["300"]
	} else {
		tokens.Background = surface["0"]
		tokens.Panel = surface["50"]
		tokens.Text = surface["900"]
		tokens.TextMuted = surface["500"]
		tokens.Border = surface["200"]
		tokens.Accent = primary["500"]
		tokens.Focus = primary["600"]
	}

	return Theme{
		Name:   state.Primary + "/" + state.Surface,
		Dark:   state.DarkMode,
		Tokens: tokens,
	}
}

func ramp(kind palette.Kind, name, fallback string) palette.Palette {
	if entry, ok := palette.Lookup(kind, name); ok {
		return entry.Palette
	}
	entry, _ := palette.Lookup(kind, fallback)
	return entry.Palette
}

func step(kind palette.Kind, name string, s palette.Step) string {
	entry, _ := palette.Lookup(kind, name)
	return entry.Palette[s]
}
