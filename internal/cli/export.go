package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/opencode-ai/themeshell/internal/models"
	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	themeCmd.AddCommand(themeExportCmd)
	themeExportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json, toml, yaml)")
	themeExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}

var themeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the selection with its resolved ramps",
	Long:  "Export the current selection and the color ramps it resolves to, for use by other tools.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(exportFormat))
		if format == "" {
			format = "json"
		}

		var export ThemeExport
		err := withBackend(cmd, func(ctx context.Context, b backend) error {
			state, err := b.State(ctx)
			if err != nil {
				return err
			}
			export = buildExport(state)
			return nil
		})
		if err != nil {
			return err
		}

		data, err := encodeExport(export, format)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return writeAll(cmd.OutOrStdout(), data)
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported theme to %s\n", exportOutput)
		return nil
	},
}

// ThemeExport is the payload written by `themeshell theme export`.
type ThemeExport struct {
	Theme   models.ThemeState `json:"theme" toml:"theme" yaml:"theme"`
	Primary map[string]string `json:"primary" toml:"primary" yaml:"primary"`
	Surface map[string]string `json:"surface" toml:"surface" yaml:"surface"`
}

func buildExport(state models.ThemeState) ThemeExport {
	return ThemeExport{
		Theme:   state,
		Primary: rampMap(palette.KindPrimary, state.Primary),
		Surface: rampMap(palette.KindSurface, state.Surface),
	}
}

func rampMap(kind palette.Kind, name string) map[string]string {
	entry, ok := palette.Lookup(kind, name)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(entry.Palette))
	for step, value := range entry.Palette {
		out[string(step)] = value
	}
	return out
}

func encodeExport(export ThemeExport, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(export); err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(export); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(export); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported export format %q (expected json, toml or yaml)", format)
	}
	return buf.Bytes(), nil
}

func writeAll(out io.Writer, data []byte) error {
	_, err := out.Write(data)
	return err
}
