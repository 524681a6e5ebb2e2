// Package cache provides a JSON-backed Redis read cache for dashboard
// projections. The service runs fully without Redis; a nil cache degrades to
// recomputing every view.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ViewCache binds a Redis client to a specific view type T with an optional
// TTL (0 means no expiry).
type ViewCache[T any] struct {
	client *goredis.Client
	ttl    time.Duration
}

// New returns a ViewCache over client; a nil client yields a no-op cache.
func New[T any](client *goredis.Client, ttl time.Duration) *ViewCache[T] {
	if client == nil {
		return nil
	}
	return &ViewCache[T]{client: client, ttl: ttl}
}

// Get retrieves and unmarshals a value. Returns (zero, false) on a miss,
// a deserialisation error, or a nil cache.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (T, bool) {
	var v T
	if c == nil {
		return v, false
	}
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return v, false
	}
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return v, false
	}
	return v, true
}

// Set stores a value under key. Errors are logged, not returned; a cache
// write miss is non-fatal.
func (c *ViewCache[T]) Set(ctx context.Context, key string, value T) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("viewcache: marshal error for key %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("viewcache: write error for key %s: %v", key, err)
	}
}

// Delete drops a key, used when a command invalidates a projection.
func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Printf("viewcache: delete error for key %s: %v", key, err)
	}
}
