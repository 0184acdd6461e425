// Package cache provides an optional Redis-backed cache for rendered API
// responses. With no client configured every operation is a no-op, so
// handlers never need to branch on whether caching is enabled.
package cache

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "matches-api:"

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matches_cache_hits_total",
		Help: "Total number of response cache hits",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matches_cache_misses_total",
		Help: "Total number of response cache misses",
	})
)

// Cache wraps a Redis client with TTL and namespace handling.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func New(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.Sugar(),
	}
}

// Enabled reports whether a backing client is configured.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get returns the cached payload for key, if present.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("Cache read failed", "key", key, "error", err)
		}
		cacheMisses.Inc()
		return nil, false
	}
	cacheHits.Inc()
	return data, true
}

// Set stores the payload under key for the configured TTL. Failures are
// logged and swallowed; the cache is best-effort.
func (c *Cache) Set(ctx context.Context, key string, data []byte) {
	if !c.Enabled() {
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warnw("Cache write failed", "key", key, "error", err)
	}
}

// Flush removes every key in the namespace. Called after a dataset reload.
func (c *Cache) Flush(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warnw("Cache delete failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warnw("Cache flush scan failed", "error", err)
	}
}

// Ping checks connectivity for readiness reporting.
func (c *Cache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
