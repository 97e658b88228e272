package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/opencode-ai/themeshell/internal/db"
	"github.com/opencode-ai/themeshell/internal/events"
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/opencode-ai/themeshell/internal/tui/components"
	"github.com/spf13/cobra"
)

var (
	themeRemote  bool
	historyLimit int
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themePrimaryCmd)
	themeCmd.AddCommand(themeSurfaceCmd)
	themeCmd.AddCommand(themeDarkCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeCSSCmd)
	themeCmd.AddCommand(themeHistoryCmd)

	themeCmd.PersistentFlags().BoolVar(&themeRemote, "remote", false, "talk to a running theme daemon instead of the local database")
	themeHistoryCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of events to show")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and change the theme",
	Long:  "Inspect and change the selected primary palette, surface palette and dark mode.",
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current selection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(ctx context.Context, b backend) error {
			state, err := b.State(ctx)
			if err != nil {
				return err
			}
			return printState(cmd, state, "")
		})
	},
}

var themeListCmd = &cobra.Command{
	Use:       "list [primary|surface]",
	Short:     "List available palettes",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(palette.KindPrimary), string(palette.KindSurface)},
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := palette.Kinds
		if len(args) == 1 {
			kind, err := palette.ParseKind(args[0])
			if err != nil {
				return err
			}
			kinds = []palette.Kind{kind}
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			var items []paletteItem
			for _, kind := range kinds {
				for _, entry := range palette.Entries(kind) {
					items = append(items, toPaletteItem(kind, entry))
				}
			}
			return WriteOutput(out, items)
		}

		color := colorEnabled(out)
		tbl := newTable("KIND", "NAME", "500")
		if color {
			tbl.headers = append(tbl.headers, "RAMP")
		}
		for _, kind := range kinds {
			for _, entry := range palette.Entries(kind) {
				row := []string{string(kind), entry.Name, entry.Palette[palette.AccentStep]}
				if color {
					row = append(row, components.RenderRamp(kind, entry.Palette))
				}
				tbl.add(row...)
			}
		}
		return tbl.print(out)
	},
}

var themePrimaryCmd = &cobra.Command{
	Use:   "primary <name>",
	Short: "Select and apply a primary palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyPalette(cmd, palette.KindPrimary, args[0])
	},
}

var themeSurfaceCmd = &cobra.Command{
	Use:   "surface <name>",
	Short: "Select and apply a surface palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyPalette(cmd, palette.KindSurface, args[0])
	},
}

var themeDarkCmd = &cobra.Command{
	Use:   "dark [on|off]",
	Short: "Show or set dark mode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value *bool
		if len(args) == 1 {
			parsed, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			value = &parsed
		}

		return withBackend(cmd, func(ctx context.Context, b backend) error {
			if value == nil {
				state, err := b.State(ctx)
				if err != nil {
					return err
				}
				return printDarkMode(cmd, state)
			}
			state, err := b.SetDarkMode(ctx, *value)
			if err != nil {
				return err
			}
			return printDarkMode(cmd, state)
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip dark mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(ctx context.Context, b backend) error {
			state, err := b.ToggleDarkMode(ctx)
			if err != nil {
				return err
			}
			return printDarkMode(cmd, state)
		})
	},
}

var themeCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the generated stylesheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBackend(cmd, func(ctx context.Context, b backend) error {
			css, err := b.Stylesheet(ctx)
			if err != nil {
				return err
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(cmd.OutOrStdout(), map[string]string{"css": css})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), css)
			return err
		})
	},
}

var themeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent theme changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		list, err := db.NewEventRepository(database).Recent(ctx, models.EntityTypeTheme, events.ThemeEntityID, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, list)
		}
		if len(list) == 0 {
			fmt.Fprintln(out, "No theme history.")
			return nil
		}

		tbl := newTable("TIME", "EVENT", "DETAILS")
		for _, event := range list {
			tbl.add(
				event.Timestamp.Local().Format("2006-01-02 15:04:05"),
				string(event.Type),
				describeEvent(event),
			)
		}
		return tbl.print(out)
	},
}

type paletteItem struct {
	Kind   string            `json:"kind"`
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

func toPaletteItem(kind palette.Kind, entry palette.Entry) paletteItem {
	colors := make(map[string]string, len(entry.Palette))
	for step, value := range entry.Palette {
		colors[string(step)] = value
	}
	return paletteItem{Kind: string(kind), Name: entry.Name, Colors: colors}
}

func withBackend(cmd *cobra.Command, fn func(context.Context, backend) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	b, err := openBackend(ctx)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(ctx, b)
}

func applyPalette(cmd *cobra.Command, kind palette.Kind, name string) error {
	name = strings.TrimSpace(name)
	return withBackend(cmd, func(ctx context.Context, b backend) error {
		state, strategy, err := b.Apply(ctx, kind, name)
		if err != nil {
			return err
		}
		return printState(cmd, state, strategy)
	})
}

type stateOutput struct {
	models.ThemeState
	Strategy string `json:"strategy,omitempty"`
}

func printState(cmd *cobra.Command, state models.ThemeState, strategy string) error {
	out := cmd.OutOrStdout()
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, stateOutput{ThemeState: state, Strategy: strategy})
	}

	tbl := newTable()
	tbl.add("primary", state.Primary)
	tbl.add("surface", state.Surface)
	tbl.add("dark mode", onOff(state.DarkMode))
	if strategy != "" {
		tbl.add("applied via", strategy)
	}
	return tbl.print(out)
}

func printDarkMode(cmd *cobra.Command, state models.ThemeState) error {
	out := cmd.OutOrStdout()
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, map[string]bool{"darkMode": state.DarkMode})
	}
	_, err := fmt.Fprintf(out, "dark mode %s\n", onOff(state.DarkMode))
	return err
}

func parseOnOff(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "dark":
		return true, nil
	case "off", "light":
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid dark mode value %q (expected on or off)", value)
	}
	return parsed, nil
}

func describeEvent(event *models.Event) string {
	switch event.Type {
	case models.EventTypePaletteApplied:
		var payload models.PaletteAppliedPayload
		if err := json.Unmarshal(event.Payload, &payload); err == nil {
			return fmt.Sprintf("%s %s (%s)", payload.Kind, payload.Name, payload.Strategy)
		}
	case models.EventTypeDarkModeChanged:
		var payload models.DarkModeChangedPayload
		if err := json.Unmarshal(event.Payload, &payload); err == nil {
			return "dark mode " + onOff(payload.DarkMode)
		}
	case models.EventTypeStateRestored:
		return fmt.Sprintf("%s / %s, dark mode %s", event.Metadata["primary"], event.Metadata["surface"], event.Metadata["dark_mode"])
	}
	return string(event.Payload)
}
