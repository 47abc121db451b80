package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"techangel/internal/app"
	"techangel/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		listen     string
		debug      bool
	)
	cmd := &cobra.Command{
		Use:          "webui",
		Short:        "Run the techangel web UI and JSON API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, listen)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			w, err := app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			srv, err := w.NewServer(debug)
			if err != nil {
				return err
			}
			return srv.Serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&configPath, "config", app.DefaultConfigPath(), "config file")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&debug, "debug", false, "expose GET /debug/state")
	return cmd
}

// loadConfig reads the config and applies the server's overrides. The server
// always logs JSON.
func loadConfig(path, listen string) (*app.Config, error) {
	cfg, err := app.Load(path)
	if err != nil {
		return nil, err
	}
	if listen != "" {
		cfg.Listen = listen
	}
	cfg.Log.Format = "json"
	return cfg, nil
}
