package models

// Default theme selection used when nothing valid is stored.
const (
	DefaultPrimary  = "rose"
	DefaultSurface  = "slate"
	DefaultDarkMode = true
)

// ThemeState is the persisted theme selection.
type ThemeState struct {
	// Primary names an entry of the primary catalog.
	Primary string `json:"primary" toml:"primary" yaml:"primary"`

	// Surface names an entry of the surface catalog.
	Surface string `json:"surface" toml:"surface" yaml:"surface"`

	// DarkMode selects the dark stylesheet variant.
	DarkMode bool `json:"darkMode" toml:"dark_mode" yaml:"dark_mode"`
}

// DefaultThemeState returns the documented fallback selection.
func DefaultThemeState() ThemeState {
	return ThemeState{
		Primary:  DefaultPrimary,
		Surface:  DefaultSurface,
		DarkMode: DefaultDarkMode,
	}
}
