package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agbru/sampler/internal/server"
)

func (a *Application) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the Fibonacci form over HTTP",
		Long: `serve starts the HTTP form server on --listen. It serves the form at /,
a JSON API under /api and Prometheus metrics at /metrics, and shuts down
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.New(
				server.Config{Addr: a.Config.ListenAddr, MaxN: a.Config.MaxN},
				server.WithLogger(a.logger),
				server.WithWeatherSource(a.fetcher),
			)
			if err != nil {
				return err
			}
			if !a.Config.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Serving the Fibonacci form on %s\n", a.Config.ListenAddr)
			}
			return srv.ListenAndServe(cmd.Context())
		},
	}
}
