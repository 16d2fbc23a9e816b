package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/marvin"
	"github.com/aretw0/marvin/internal/config"
	"github.com/aretw0/marvin/pkg/adapters/memory"
	"github.com/aretw0/marvin/pkg/adapters/redis"
	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/observability"
	"github.com/aretw0/marvin/pkg/ports"
)

// createEngine initializes a Marvin engine with standard CLI conventions.
// The returned func releases the cache connection.
func createEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*marvin.Engine, func() error, error) {
	// 1. Logger & Hooks
	engineOpts := []marvin.Option{marvin.WithLogger(logger)}
	hooks = append([]domain.LifecycleHooks{observability.LogHooks(logger)}, hooks...)
	engineOpts = append(engineOpts, marvin.WithLifecycleHooks(observability.Combine(hooks...)))

	// 2. Cache
	cache, closeCache, err := createCache(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, nil, err
	}
	if cache != nil {
		engineOpts = append(engineOpts, marvin.WithCache(cache))
	}

	return marvin.New(engineOpts...), closeCache, nil
}

func createCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ports.FingerprintCache, func() error, error) {
	noop := func() error { return nil }
	if !cfg.Enabled {
		return nil, noop, nil
	}

	switch cfg.Backend {
	case "redis":
		cache := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			redis.WithPrefix(cfg.Prefix),
			redis.WithTTL(cfg.TTL),
		)
		if err := cache.Ping(ctx); err != nil {
			cache.Close()
			return nil, nil, fmt.Errorf("redis cache unavailable at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("Fingerprint cache enabled", "backend", "redis", "addr", cfg.RedisAddr)
		return cache, cache.Close, nil
	default:
		logger.Info("Fingerprint cache enabled", "backend", "memory", "max_entries", cfg.MaxEntries)
		return memory.NewCache(memory.WithMaxEntries(cfg.MaxEntries)), noop, nil
	}
}
