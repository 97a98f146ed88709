package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL = 10 * time.Minute
	keyPrefix  = "mba:"
)

// Cache stores raw analytics-service response bodies keyed by query
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func buildKey(kind, query string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, kind, query)
}

// Get a cached body. A miss returns (nil, false, nil).
func (c *Cache) Get(ctx context.Context, kind, query string) (json.RawMessage, bool, error) {
	key := buildKey(kind, query)
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	if !json.Valid(val) {
		return nil, false, fmt.Errorf("cached value %s is not valid JSON", key)
	}
	return json.RawMessage(val), true, nil
}

// Store a body
func (c *Cache) Set(ctx context.Context, kind, query string, body json.RawMessage) error {
	key := buildKey(kind, query)
	if err := c.client.Set(ctx, key, []byte(body), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

// Clear every cached response: used after the model is retrained
func (c *Cache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
