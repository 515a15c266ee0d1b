package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache is a CacheRepository backed by Redis. When Redis cannot be
// reached at startup, or an operation fails later on, the cache disables
// itself and behaves as an always-missing cache.
type RedisCache struct {
	client *redis.Client
	logger zerolog.Logger

	mu       sync.RWMutex
	disabled bool
}

func NewRedisCache(cfg RedisConfig, logger zerolog.Logger) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		MaxRetries:   -1,
	})
	c := &RedisCache{
		client: rdb,
		logger: logger.With().Str("component", "cache").Logger(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		c.logger.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis unavailable, running without cache")
		c.disabled = true
		return c
	}

	c.logger.Info().Str("addr", cfg.Addr).Msg("redis cache initialized")
	return c
}

// Available reports whether the cache is still serving requests.
func (r *RedisCache) Available() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.disabled
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	if !r.Available() {
		return "", false
	}
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		r.handleError(err, "get")
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.handleError(err, "set")
		return err
	}
	return nil
}

func (r *RedisCache) handleError(err error, operation string) {
	if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
		return
	}

	r.logger.Warn().Err(err).Str("operation", operation).Msg("disabling cache after redis error")

	r.mu.Lock()
	r.disabled = true
	r.mu.Unlock()
}
