package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("THEMESHELL_DATABASE_PATH", filepath.Join(dir, "themeshell.db"))
	t.Setenv("THEMESHELL_LOGGING_LEVEL", "error")
	return dir
}

func resetFlags() {
	cfgFile = ""
	logLevel = ""
	jsonOutput = false
	jsonlOutput = false
	nonInteractive = false
	noColor = false
	themeRemote = false
	historyLimit = 20
	exportFormat = "json"
	exportOutput = ""
	appConfig = nil
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func showState(t *testing.T) stateOutput {
	t.Helper()
	out, err := runCLI(t, "theme", "show", "--json")
	require.NoError(t, err)

	var got stateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func TestThemeShowDefaults(t *testing.T) {
	setupCLI(t)

	got := showState(t)
	require.Equal(t, models.DefaultThemeState(), got.ThemeState)
}

func TestThemePrimaryPersists(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "primary", "emerald", "--json")
	require.NoError(t, err)

	var applied stateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &applied))
	require.Equal(t, "emerald", applied.Primary)
	require.Equal(t, "delegate", applied.Strategy)

	_, err = runCLI(t, "theme", "surface", "zinc")
	require.NoError(t, err)

	got := showState(t)
	require.Equal(t, "emerald", got.Primary)
	require.Equal(t, "zinc", got.Surface)
}

func TestThemePrimaryUnknownSuggests(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "theme", "primary", "emrald")
	require.Error(t, err)
	require.Contains(t, err.Error(), "did you mean emerald")

	require.Equal(t, models.DefaultPrimary, showState(t).Primary)
}

func TestThemeDarkAndToggle(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "dark", "off")
	require.NoError(t, err)
	require.Equal(t, "dark mode off\n", out)

	out, err = runCLI(t, "theme", "dark")
	require.NoError(t, err)
	require.Equal(t, "dark mode off\n", out)

	out, err = runCLI(t, "theme", "toggle")
	require.NoError(t, err)
	require.Equal(t, "dark mode on\n", out)

	_, err = runCLI(t, "theme", "dark", "maybe")
	require.Error(t, err)
}

func TestThemeCSS(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "theme", "primary", "sky")
	require.NoError(t, err)

	out, err := runCLI(t, "theme", "css")
	require.NoError(t, err)

	sky, _ := palette.Lookup(palette.KindPrimary, "sky")
	require.Contains(t, out, ":root {")
	require.Contains(t, out, "--p-primary-color: "+sky.Palette["500"])
	require.Contains(t, out, "--p-surface-0: #ffffff")
}

func TestThemeListJSON(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "list", "surface", "--json")
	require.NoError(t, err)

	var items []paletteItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, len(palette.Entries(palette.KindSurface)))
	require.Equal(t, "slate", items[0].Name)
	require.Equal(t, "#ffffff", items[0].Colors["0"])

	_, err = runCLI(t, "theme", "list", "accent")
	require.Error(t, err)
}

func TestThemeListTable(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "list", "primary")
	require.NoError(t, err)
	require.Contains(t, out, "KIND")
	require.Contains(t, out, "emerald")
	require.Contains(t, out, "#10b981")
	require.NotContains(t, out, "RAMP")
}

func TestThemeExportFormatsParseBack(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "theme", "primary", "violet")
	require.NoError(t, err)

	want := buildExport(models.ThemeState{Primary: "violet", Surface: "slate", DarkMode: true})

	out, err := runCLI(t, "theme", "export", "--format", "json")
	require.NoError(t, err)
	var fromJSON ThemeExport
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	require.Equal(t, want, fromJSON)

	out, err = runCLI(t, "theme", "export", "--format", "toml")
	require.NoError(t, err)
	var fromTOML ThemeExport
	_, err = toml.Decode(out, &fromTOML)
	require.NoError(t, err)
	require.Equal(t, want, fromTOML)

	out, err = runCLI(t, "theme", "export", "--format", "yaml")
	require.NoError(t, err)
	var fromYAML ThemeExport
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	require.Equal(t, want, fromYAML)

	_, err = runCLI(t, "theme", "export", "--format", "xml")
	require.Error(t, err)
}

func TestThemeExportToFile(t *testing.T) {
	dir := setupCLI(t)
	path := filepath.Join(dir, "theme.yaml")

	_, err := runCLI(t, "theme", "export", "--format", "yaml", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "primary: rose")
}

func TestThemeHistory(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "history")
	require.NoError(t, err)
	require.Contains(t, out, "No theme history.")

	_, err = runCLI(t, "theme", "primary", "emerald")
	require.NoError(t, err)
	_, err = runCLI(t, "theme", "dark", "off")
	require.NoError(t, err)

	out, err = runCLI(t, "theme", "history", "--json")
	require.NoError(t, err)

	var list []models.Event
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 2)
	require.Equal(t, models.EventTypeDarkModeChanged, list[0].Type)
	require.Equal(t, models.EventTypePaletteApplied, list[1].Type)

	out, err = runCLI(t, "theme", "history")
	require.NoError(t, err)
	require.Contains(t, out, "primary emerald (delegate)")
	require.Contains(t, out, "dark mode off")
}

func TestHistoryDisabled(t *testing.T) {
	setupCLI(t)
	t.Setenv("THEMESHELL_THEME_HISTORY", "false")

	_, err := runCLI(t, "theme", "primary", "emerald")
	require.NoError(t, err)

	out, err := runCLI(t, "theme", "history")
	require.NoError(t, err)
	require.Contains(t, out, "No theme history.")
}

func TestDelegateDisabledUsesDirectWrites(t *testing.T) {
	setupCLI(t)
	t.Setenv("THEMESHELL_THEME_DELEGATE", "false")

	out, err := runCLI(t, "theme", "primary", "emerald", "--json")
	require.NoError(t, err)

	var applied stateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &applied))
	require.Equal(t, "direct", applied.Strategy)
}

func TestUIRequiresInteractiveTerminal(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "ui", "--non-interactive")
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight))
	require.Contains(t, err.Error(), "themeshell theme list")
}

func TestParseOnOff(t *testing.T) {
	for input, want := range map[string]bool{"on": true, "OFF": false, "dark": true, "light": false, "true": true, "0": false} {
		got, err := parseOnOff(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}
}

func TestTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	tbl := newTable("KIND", "NAME")
	tbl.add("primary", "rose")
	tbl.add("surface", "slate")
	require.NoError(t, tbl.print(&buf))
	require.Equal(t, "KIND     NAME\nprimary  rose\nsurface  slate\n", buf.String())
}
