package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		listen string
		debug  bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverURL != "" {
				return errors.New("serve runs locally; drop --server")
			}
			if listen != "" {
				wire.Config.Listen = listen
			}
			srv, err := wire.NewServer(debug)
			if err != nil {
				return err
			}
			return srv.Serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&debug, "debug", false, "expose GET /debug/state")
	return cmd
}
