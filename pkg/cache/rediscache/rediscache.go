// Package rediscache implements cache.Cache on top of Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"podium/pkg/cache"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	// TTL applies to every Set. Zero means cache.DefaultTTL.
	TTL time.Duration
	// Prefix namespaces every key, e.g. "podium:".
	Prefix string
}

// Cache is a JSON value cache stored in Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

var _ cache.Cache = (*Cache)(nil)

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, opts Options) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis at %s: %w", opts.Addr, err)
	}

	return NewWithClient(client, opts.TTL, opts.Prefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, ttl time.Duration, prefix string) *Cache {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}

	return &Cache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}
}

func (c *Cache) key(k string) string { return c.prefix + k }

func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("could not get %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("could not decode cached %s: %w", key, err)
	}

	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %s for cache: %w", key, err)
	}

	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("could not set %s in redis: %w", key, err)
	}

	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("could not delete keys from redis: %w", err)
	}

	return nil
}

// Ping checks the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
