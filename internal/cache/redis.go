// Package cache provides an optional Redis read-through cache for the
// activities snapshot. The registry stays the source of truth; every mutation
// invalidates the cached snapshot.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"school-activities/internal/common/config"
	"school-activities/pkg/catalog"
)

const snapshotKey = "activities:snapshot"

// SnapshotCache caches the serialized activities catalog.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a snapshot cache from the cache configuration.
func New(cfg config.CacheConfig) *SnapshotCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return NewWithClient(rdb, time.Duration(cfg.TTL)*time.Second)
}

// NewWithClient wraps an existing Redis client. Used by tests with miniredis.
func NewWithClient(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

// Ping tests the Redis connection.
func (c *SnapshotCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Get returns the cached catalog, or a cache miss (false) when absent or
// unparseable.
func (c *SnapshotCache) Get(ctx context.Context) (catalog.Catalog, bool) {
	val, err := c.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		return nil, false
	}
	var snapshot catalog.Catalog
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, false
	}
	return snapshot, true
}

// Set stores the catalog snapshot with the configured TTL.
func (c *SnapshotCache) Set(ctx context.Context, snapshot catalog.Catalog) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot after a roster mutation.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("invalidate snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying Redis connection.
func (c *SnapshotCache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
