package bootstrap

import (
	"context"
	"log/slog"

	"corral-store/internal/pkg/cache"
	"corral-store/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
	),
)

// NewCache picks Redis when an address is configured, in-memory otherwise.
func NewCache(lc fx.Lifecycle, cfg config.Config) (cache.Cache, error) {
	var (
		c   cache.Cache
		err error
	)
	if cfg.Cache.RedisAddr != "" {
		c, err = cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		slog.Info("listing cache backed by redis", "addr", cfg.Cache.RedisAddr)
	} else {
		c = cache.NewMemoryCache()
		slog.Info("listing cache backed by memory")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})
	return c, nil
}
