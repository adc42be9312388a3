package cache

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/pkg/config"
)

// New builds the cache backend selected by configuration
func New(ctx context.Context, cfg config.CacheConfig, redisCfg config.RedisConfig, log *zap.Logger) (Cache, error) {
	switch cfg.Backend {
	case "", memoryBackend:
		return NewMemoryCache(cfg.MaxSizeMB), nil
	case redisBackend:
		return NewRedisCache(ctx, RedisOptions{
			Addr:      redisCfg.Addr,
			URL:       redisCfg.URL,
			Password:  redisCfg.Password,
			DB:        redisCfg.DB,
			KeyPrefix: "recipes:",
		}, log)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
