package cli

import (
	"github.com/opencode-ai/themeshell/internal/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the theme picker",
	Long:  "Launch the interactive palette picker. Changes are applied and saved as you pick them.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			return &PreflightError{
				Message:  "the picker requires an interactive terminal",
				Hint:     "run with a TTY and without --non-interactive, or use the theme subcommands",
				NextStep: "themeshell theme list",
			}
		}

		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()
		rt.logRestored(cmd.Context())

		return tui.Run(rt.engine, rt.loop)
	},
}
