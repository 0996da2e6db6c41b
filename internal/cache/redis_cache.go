package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/config"
	"github.com/redis/go-redis/v9"
)

// redisCache keeps JSON documents in redis. Product listings are the only
// callers today, so values are small and read far more often than written.
type redisCache struct {
	rdb        redis.Cmdable
	defaultTTL time.Duration
}

func NewRedisCache(rdb redis.Cmdable, cfg *config.CacheConfig) Cache {
	return &redisCache{rdb: rdb, defaultTTL: cfg.DefaultTTL}
}

func (c *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("cache get %s: unmarshal: %w", key, err)
	}

	return true, nil
}

// Set falls back to the configured default TTL when ttl is not positive.
func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache set %s: marshal: %w", key, err)
	}

	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

// Delete unlinks keys so large values are freed off the redis main thread.
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.rdb.Unlink(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete %v: %w", keys, err)
	}

	return nil
}
