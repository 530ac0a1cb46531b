package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ericlevine/gs1parse/ai"
	"github.com/ericlevine/gs1parse/internal/cache"
	"github.com/ericlevine/gs1parse/internal/config"
	"github.com/ericlevine/gs1parse/internal/logging"
	"github.com/ericlevine/gs1parse/internal/metrics"
	"github.com/ericlevine/gs1parse/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(root)
			if err != nil {
				return err
			}
			defer log.Sync()
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address; overrides server.addr")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	opts := []server.Option{server.WithLogger(log.Named("http"))}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		opts = append(opts, server.WithMetrics(m, cfg.Metrics.Path))
	}
	if cfg.Cache.Enabled {
		c := cache.New(cfg.Cache)
		defer c.Close()
		if err := c.Ping(ctx); err != nil {
			log.Warn("result cache unreachable", logging.String("addr", cfg.Cache.Addr), logging.Err(err))
		}
		opts = append(opts, server.WithCache(c))
	}

	srv := server.New(cfg.Server, openRegistry(cfg, log), opts...)

	if cfg.Registry.Watch && cfg.Registry.Path != "" {
		go watchRegistry(ctx, cfg.Registry.Path, srv, m, log.Named("registry"))
	}
	return srv.Run(ctx)
}

func watchRegistry(ctx context.Context, path string, srv *server.Server, m *metrics.Metrics, log logging.Logger) {
	onChange := func(reg *ai.Registry) {
		srv.SetRegistry(reg)
		m.RegistryReloaded(true)
		log.Info("AI table reloaded", logging.String("source", reg.Source()), logging.Int("size", reg.Len()))
	}
	onError := func(err error) {
		m.RegistryReloaded(false)
		log.Warn("AI table reload failed, keeping current table", logging.Err(err))
	}
	if err := ai.Watch(ctx, path, onChange, onError); err != nil {
		log.Error("AI table watch stopped", logging.Err(err))
	}
}
