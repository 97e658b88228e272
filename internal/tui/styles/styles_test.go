package styles

import (
	"reflect"
	"testing"

	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/stretchr/testify/require"
)

func TestFromStateDarkAndLight(t *testing.T) {
	dark := FromState(models.ThemeState{Primary: "emerald", Surface: "zinc", DarkMode: true})
	light := FromState(models.ThemeState{Primary: "emerald", Surface: "zinc", DarkMode: false})

	require.Equal(t, "emerald/zinc", dark.Name)
	require.True(t, dark.Dark)
	require.Equal(t, "#ffffff", dark.Tokens.Text)
	require.Equal(t, "#ffffff", light.Tokens.Background)
	require.Equal(t, "#10b981", light.Tokens.Accent)
	require.NotEqual(t, dark.Tokens.Background, light.Tokens.Background)
}

func TestFromStateUnknownNamesFallBack(t *testing.T) {
	got := FromState(models.ThemeState{Primary: "nope", Surface: "nope"})
	want := FromState(models.ThemeState{Primary: models.DefaultPrimary, Surface: models.DefaultSurface})
	require.Equal(t, want.Tokens, got.Tokens)
}

func TestEveryTokenIsSet(t *testing.T) {
	for _, dark := range []bool{true, false} {
		tokens := FromState(models.ThemeState{Primary: "rose", Surface: "slate", DarkMode: dark}).Tokens
		v := reflect.ValueOf(tokens)
		for i := 0; i < v.NumField(); i++ {
			require.NotEmpty(t, v.Field(i).String(), "token %s (dark=%v)", v.Type().Field(i).Name, dark)
		}
	}
}

func TestContrast(t *testing.T) {
	require.InDelta(t, 21.0, ContrastRatio("#000000", "#ffffff"), 0.01)
	require.InDelta(t, 1.0, ContrastRatio("#10b981", "#10b981"), 0.001)
	require.Zero(t, ContrastRatio("nope", "#ffffff"))

	require.Equal(t, "#000000", ReadableOn("#fafafa"))
	require.Equal(t, "#ffffff", ReadableOn("#09090b"))
}

func TestThemeTokensReadable(t *testing.T) {
	for _, dark := range []bool{true, false} {
		theme := FromState(models.ThemeState{Primary: "rose", Surface: "slate", DarkMode: dark})
		require.Greater(t, ContrastRatio(theme.Tokens.Text, theme.Tokens.Background), 4.5)
	}
}
