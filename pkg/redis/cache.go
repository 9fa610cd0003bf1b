package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wonny/marketbrief/pkg/config"
)

// Cache is a typed JSON cache for fetched page batches. Quote and news
// pages change slowly, so a fresh batch is reused for the configured
// TTL. When Redis is disabled in config every operation is a no-op and
// callers never have to branch on availability.
type Cache struct {
	rdb    *redis.Client
	prefix string
}

// NewCache connects to Redis and returns the cache. With Redis
// disabled the returned cache is a no-op.
func NewCache(cfg *config.Config, prefix string) (*Cache, error) {
	if !cfg.Redis.Enabled {
		return &Cache{prefix: prefix}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Cache{
		rdb:    rdb,
		prefix: prefix,
	}, nil
}

// Enabled returns whether the cache is backed by a live connection.
func (c *Cache) Enabled() bool {
	return c.rdb != nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}

func (c *Cache) key(key string) string {
	return fmt.Sprintf("%s:cache:%s", c.prefix, key)
}

// Get retrieves a cached value. A miss (or disabled Redis) returns
// found=false without error.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c.rdb == nil {
		return false, nil
	}

	data, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		// Key not found is not an error
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal failed: %w", err)
	}

	return true, nil
}

// Set stores a value in cache with TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.rdb == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}

	return c.rdb.Set(ctx, c.key(key), data, ttl).Err()
}

// Delete removes a cached value
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c.rdb == nil {
		return nil
	}

	return c.rdb.Del(ctx, c.key(key)).Err()
}
