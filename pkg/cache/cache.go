// Package cache is a small JSON value cache used in front of read-heavy
// content queries.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encodable values under string keys.
type Cache interface {
	// Get decodes the value under key into dst and reports whether it was
	// present.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set stores v under key with the cache's default TTL.
	Set(ctx context.Context, key string, v any) error
	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error
}

// Nop never stores anything. It is used when no Redis address is configured.
type Nop struct{}

var _ Cache = Nop{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any) error         { return nil }
func (Nop) Delete(context.Context, ...string) error        { return nil }

// GetOrLoad returns the cached value under key, calling load and storing its
// result on a miss. Cache failures fall back to load.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	if ok, err := c.Get(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	_ = c.Set(ctx, key, v)

	return v, nil
}

// DefaultTTL is used when a cache is created without an explicit TTL.
const DefaultTTL = 5 * time.Minute
