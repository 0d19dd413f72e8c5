package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wfca-mz/fire-widget/internal/api"
	"github.com/wfca-mz/fire-widget/internal/cache"
	"github.com/wfca-mz/fire-widget/internal/cache/filecache"
	"github.com/wfca-mz/fire-widget/internal/cache/memcache"
	"github.com/wfca-mz/fire-widget/internal/cache/rediscache"
	"github.com/wfca-mz/fire-widget/internal/config"
	"github.com/wfca-mz/fire-widget/internal/metrics"
	"github.com/wfca-mz/fire-widget/internal/service"
	"github.com/wfca-mz/fire-widget/internal/storage/postgres"
	"github.com/wfca-mz/fire-widget/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	RedisStore *rediscache.Store
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	store, redisStore, err := newCacheStore(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, err
	}

	m := metrics.New()

	fireSvc := service.NewFireService(
		storage.Fires(),
		store,
		logger,
		m,
		cfg.Cache.TTL,
		cfg.Cache.SweepMaxAge,
		cfg.Cache.SweepProbability,
	)
	srv := service.NewService(fireSvc)

	httpServer := api.NewServer(cfg, logger, srv, m)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		RedisStore: redisStore,
	}, nil
}

// newCacheStore builds the configured cache backend. The backend is an
// explicit startup choice; core logic only ever sees the Store interface.
func newCacheStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Store, *rediscache.Store, error) {
	switch cfg.Cache.Backend {
	case "redis":
		logger.Info("Initializing Redis cache", slog.String("addr", cfg.Redis.Addr))
		rs, err := rediscache.New(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init redis cache: %w", err)
		}
		return rs, rs, nil
	case "file":
		logger.Info("Using file cache", slog.String("dir", cfg.Cache.Dir))
		return filecache.New(cfg.Cache.Dir), nil, nil
	default:
		logger.Info("Using in-memory cache")
		return memcache.New(), nil, nil
	}
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "development":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.RedisStore != nil {
		if err := c.RedisStore.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.Any("error", err))
		}
	}

	c.logger.Info("All components stopped", slog.Duration("latency", time.Since(start)))
}
