package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/pkg/logger"
)

const redisBackend = "redis"

// RedisOptions configures the redis backend. URL takes precedence over Addr.
type RedisOptions struct {
	Addr      string
	URL       string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisCache stores entries in redis so that several instances share one cache
type RedisCache struct {
	client *redis.Client
	prefix string
	log    *zap.Logger
}

// NewRedisCache connects to redis and verifies the connection
func NewRedisCache(ctx context.Context, opts RedisOptions, log *zap.Logger) (*RedisCache, error) {
	log = logger.OrNop(log)

	redisOpts := &redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}
	if opts.URL != "" {
		parsed, err := redis.ParseURL(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		redisOpts = parsed
	}

	client := redis.NewClient(redisOpts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("connected to redis cache", zap.String("addr", redisOpts.Addr))
	return NewRedisCacheFromClient(client, opts.KeyPrefix, log), nil
}

// NewRedisCacheFromClient wraps an existing client
func NewRedisCacheFromClient(client *redis.Client, prefix string, log *zap.Logger) *RedisCache {
	log = logger.OrNop(log)
	return &RedisCache{client: client, prefix: prefix, log: log.Named("cache")}
}

// Get retrieves a value from redis
func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := rc.client.Get(ctx, rc.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			rc.log.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		recordLookup(redisBackend, false)
		return nil, false
	}
	recordLookup(redisBackend, true)
	return value, true
}

// Set stores a value in redis with a TTL. Non-positive TTLs are ignored.
func (rc *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := rc.client.Set(ctx, rc.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a value from redis
func (rc *RedisCache) Delete(ctx context.Context, key string) error {
	if err := rc.client.Del(ctx, rc.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

// Ping checks the redis connection
func (rc *RedisCache) Ping(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// Close closes the redis client
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}
