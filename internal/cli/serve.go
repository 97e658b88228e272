package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/opencode-ai/themeshell/internal/logging"
	"github.com/opencode-ai/themeshell/internal/themed"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "bind address (default daemon.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "gRPC port (default daemon.port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the theme daemon",
	Long:  "Run the gRPC theme service so other processes can read and change the theme.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.Close()
		rt.logRestored(ctx)

		opts := themed.Options{
			Hostname: cfg.Daemon.Host,
			Port:     cfg.Daemon.Port,
			Version:  version,
		}
		if serveHost != "" {
			opts.Hostname = serveHost
		}
		if servePort != 0 {
			opts.Port = servePort
		}

		daemon, err := themed.New(rt.engine, rt.loop, rt.root, logging.Component("themed"), opts)
		if err != nil {
			return err
		}
		return daemon.Run(ctx)
	},
}
