package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "hibp:range:"

// RedisRangeCache stores raw breach range responses keyed by hash prefix.
// Cache misses and redis failures both fall through to the network; the
// cache is an optimization, never a source of truth.
type RedisRangeCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisRangeCache(addr string, ttl time.Duration, logger *zap.Logger) *RedisRangeCache {
	return &RedisRangeCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisRangeCache) Get(ctx context.Context, prefix string) (string, bool) {
	body, err := c.client.Get(ctx, keyPrefix+prefix).Result()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("range cache read failed", zap.String("prefix", prefix), zap.Error(err))
		}
		return "", false
	}
	return body, true
}

func (c *RedisRangeCache) Set(ctx context.Context, prefix, body string) {
	if err := c.client.Set(ctx, keyPrefix+prefix, body, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("range cache write failed", zap.String("prefix", prefix), zap.Error(err))
	}
}

func (c *RedisRangeCache) Close() error {
	return c.client.Close()
}
