package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmccarthy619/file-name-generator/internal/server"
)

func (a *App) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the taxonomy and the name formatter over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, source, err := a.loadStore()
			if err != nil {
				return failed(err)
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			a.logger.Info("starting server", zap.String("addr", addr), zap.String("taxonomy", source))
			headerStyle.Fprintf(a.stderr, "serving on http://%s\n", addr)

			srv := server.New(addr, store, server.WithLogger(a.logger))
			if err := srv.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return failed(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config or DATEINAME_ADDR)")
	return cmd
}
