// Package cli implements the themeshell command line.
package cli

import (
	"fmt"

	"github.com/opencode-ai/themeshell/internal/config"
	"github.com/opencode-ai/themeshell/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	logLevel       string
	jsonOutput     bool
	jsonlOutput    bool
	nonInteractive bool
	noColor        bool

	appConfig *config.Config
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:           "themeshell",
	Short:         "Switch the app shell's color theme at runtime",
	Long:          "themeshell selects primary and surface palettes and dark mode, persists the selection and propagates it into the shell's stylesheet.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		logging.Init(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		appConfig = cfg
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/themeshell/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start interactive views")
	flags.BoolVar(&noColor, "no-color", false, "disable color swatches")
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
		rootCmd.Version = v
	}
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration. It is nil before the root
// command's pre-run.
func GetConfig() *config.Config {
	return appConfig
}

func requireConfig() (*config.Config, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return appConfig, nil
}
