package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"realtors/internal/api"
	"realtors/internal/api/handler/v1handler"
	"realtors/internal/config"
	"realtors/internal/directory"
	"realtors/internal/highlights"
	"realtors/internal/policy"
	"realtors/internal/realtor"
	"realtors/internal/worker"
	"realtors/pkg/cache"
	"realtors/pkg/cache/memory"
	rediscache "realtors/pkg/cache/redis"
	"realtors/pkg/logger"
	"realtors/pkg/metrics"
	"realtors/pkg/storage/postgres"
	"realtors/pkg/telemetry"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

func setupTelemetry(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	providers, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName:  cfg.Telemetry.ServiceName,
		Environment:  cfg.Environment,
		StdoutTraces: cfg.Telemetry.StdoutTraces,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure: cfg.Telemetry.OTLPInsecure,
		OTLPHeaders:  cfg.Telemetry.OTLPHeaders,
	})
	if err != nil {
		logger.Fatal(ctx, "could not set up telemetry", zap.Error(err))
	}

	return func(ctx context.Context) {
		if err := providers.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shut down telemetry", zap.Error(err))
		}
	}
}

// setupCache returns the configured cache backend wrapped with metrics.
func setupCache(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (cache.Cache, func()) {
	switch cfg.Cache.Driver {
	case "memory":
		logger.Info(ctx, "using in-memory cache")

		return cache.Instrument(memory.New(), m), func() {}
	case "redis":
		c, err := rediscache.New(ctx, rediscache.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
			KeyPrefix:   cfg.Cache.KeyPrefix,
		})
		if err != nil {
			logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
		}

		return cache.Instrument(c, m), func() {
			logger.Info(ctx, "closing redis client...")
			if err := c.Close(); err != nil {
				logger.Warn(ctx, "could not close redis client", zap.Error(err))
			}
		}
	default:
		logger.Fatal(ctx, "unknown cache driver", zap.String("driver", cfg.Cache.Driver))

		return nil, nil
	}
}

func setupWorker(ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	deps worker.Deps) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	client, err := worker.Start(ctx, pgsql.Pool, deps, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start worker", zap.Error(err))
	}

	return client, func(ctx context.Context) {
		logger.Info(ctx, "stopping worker...")
		if err := client.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop worker", zap.Error(err))
		}
	}
}

// setupJobsUI serves the river dashboard for the given client.
func setupJobsUI(ctx context.Context, client *river.Client[pgx.Tx]) http.Handler {
	ui, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		Prefix:    "/riverui",
	})
	if err != nil {
		logger.Fatal(ctx, "could not create river ui", zap.Error(err))
	}
	if err = ui.Start(ctx); err != nil {
		logger.Fatal(ctx, "could not start river ui", zap.Error(err))
	}

	return ui
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopTelemetry := setupTelemetry(ctx, cfg)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			m := metrics.New(prometheus.DefaultRegisterer)
			c, closeCache := setupCache(ctx, cfg, m)
			defer closeCache()

			listing, err := directory.New(strg, c, m, directory.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create directory listing", zap.Error(err))
			}
			hl := highlights.New(strg, c, highlights.NewOptions(cfg))
			manager := realtor.New(realtor.Deps{
				Storage: strg,
				Cache:   c,
				Policy:  policy.NewDefault(policy.NewOptions(cfg)),
				Metrics: m,
			}, realtor.NewOptions(cfg))

			deps := api.Deps{
				Deps: v1handler.Deps{
					Listing:    listing,
					Realtors:   manager,
					Highlights: hl,
				},
			}

			stopWorker := func(context.Context) {}
			if cfg.Worker.Enabled {
				var client *river.Client[pgx.Tx]
				client, stopWorker = setupWorker(ctx, cfg, strg, worker.Deps{Highlights: hl})
				deps.JobsUI = setupJobsUI(ctx, client)
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			stopTelemetry(shutdownCtx)
		},
	}

	return cmd
}
