package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache stores values of type V under string keys with per-entry TTLs.
//
// Every backend reads the ttl argument of Set the same way: a positive
// duration expires the entry after that long, zero falls back to the
// backend's configured default, and a negative duration keeps the entry
// until it is deleted.
type Cache[V any] interface {
	// Get returns the value stored under key, or ErrNotFound when the key
	// is absent or its TTL has run out.
	Get(ctx context.Context, key string) (V, error)

	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases whatever the backend holds open. Safe to call more
	// than once.
	Close() error
}

// inflight collapses concurrent GetOrSet misses on the same key.
var inflight singleflight.Group

type loaded[V any] struct {
	value V
	ttl   time.Duration
}

// GetOrSet returns the cached value for key, running load to produce it on
// a miss. Concurrent misses on the same key share a single load call; the
// losers receive the winner's result.
//
// load returns the value together with the TTL it should be stored under.
// When load fails nothing is cached and its error is returned unchanged.
// The follow-up Set is best effort: a write failure still hands back the
// freshly loaded value.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, load func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	res, err, _ := inflight.Do(key, func() (any, error) {
		v, ttl, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return loaded[V]{value: v, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	l := res.(loaded[V])
	_ = c.Set(ctx, key, l.value, l.ttl)

	return l.value, nil
}
