package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vekiano/mapa-astral-estrelas/internal/cities"
	"github.com/vekiano/mapa-astral-estrelas/internal/config"
	"github.com/vekiano/mapa-astral-estrelas/internal/ephemeris"
	"github.com/vekiano/mapa-astral-estrelas/internal/server"
)

// NewServeCommand runs the HTTP API server.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart API and front end over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}

			var cityIndex *cities.Index
			if cfg.CitiesFile != "" {
				cityIndex, err = cities.OpenFile(cfg.CitiesFile)
				if err != nil {
					return err
				}
				defer cityIndex.Close()

				n, err := cityIndex.Count(cmd.Context())
				if err != nil {
					return err
				}
				slog.Info("city index loaded", "path", cfg.CitiesFile, "cities", n)
			} else {
				slog.Warn("no cities file configured; city search disabled")
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(cfg, ephemeris.NewMeanMotion(), cityIndex)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
