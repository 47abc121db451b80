package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"techangel/internal/app"
	"techangel/internal/logging"
	"techangel/internal/tui"
)

func tuiCmd() *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverURL != "" {
				return errors.New("tui runs locally; drop --server")
			}
			timeout, err := wire.Config.GetReadyTimeout()
			if err != nil {
				return err
			}

			// Logs go to a file so they do not tear the screen.
			lvl, err := zapcore.ParseLevel(wire.Config.Log.Level)
			if err != nil {
				return err
			}
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err != nil {
				return err
			}
			log := logging.NewWriter(f, lvl)
			defer logging.SafeCloseWithLogging(f, wire.Log, "tui log file")
			defer func() { _ = log.Sync() }()

			w, err := app.NewWire(wire.Config, log)
			if err != nil {
				return err
			}
			logging.LogOperation(log, "tui started")
			return tui.Run(cmd.Context(), tui.Options{
				Converter:    w.NewConverterView(),
				Regression:   w.NewRegressionView(),
				Models:       w.Regression.Models(),
				Gate:         w.Gate,
				ReadyTimeout: timeout,
			})
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", filepath.Join(os.TempDir(), "techangel-tui.log"), "where the TUI writes its logs")
	return cmd
}
