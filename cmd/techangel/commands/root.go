package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"techangel/internal/app"
	"techangel/internal/client"
	"techangel/internal/logging"
)

var (
	configPath string
	serverURL  string
	logLevel   string
	output     string

	wire *app.Wire
	api  backend
)

// Execute runs the CLI until it finishes or ctx is cancelled.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "techangel",
		Short:         "SS58/EVM address converter and salary regression demo",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("--output must be text or json, got %q", output)
			}

			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			wire, err = app.NewWire(cfg, log)
			if err != nil {
				return err
			}

			if serverURL != "" {
				api = client.NewHTTP(serverURL)
				log.Debug("using remote server", zap.String("url", serverURL))
			} else {
				api = localBackend{wire}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				_ = wire.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", app.DefaultConfigPath(), "config file")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "web UI base URL to use instead of local services (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text or json")

	root.AddCommand(toEVMCmd(), toSS58Cmd(), decodeCmd(), regressionCmd(), tuiCmd(), serveCmd())
	return root
}
