package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisTTL = time.Hour

// Redis stores entries on a Redis server so several processes can share
// them. Values pass through a Marshaler on the way in and out; a nil
// Marshaler at construction selects JSON.
type Redis[V any] struct {
	client redis.UniversalClient
	codec  Marshaler[V]
	prefix string
	ttl    time.Duration
}

// RedisOption tunes a Redis cache at construction time.
type RedisOption func(*redisSettings)

type redisSettings struct {
	prefix string
	ttl    time.Duration
}

// WithRedisDefaultTTL replaces the TTL applied when Set is called with
// zero. The initial default is one hour.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(s *redisSettings) {
		s.ttl = d
	}
}

// WithPrefix namespaces every key as "prefix:key" so unrelated caches can
// share one Redis database without colliding.
func WithPrefix(prefix string) RedisOption {
	return func(s *redisSettings) {
		s.prefix = prefix
	}
}

// NewRedis builds a cache on top of an already connected client, typically
// one from pkg/redis. Closing the cache does not close the client.
//
//	client := redis.MustOpen(ctx, cfg.CacheRedisURL)
//	listings := cache.NewRedis[[]mandrill.TemplateInfo](client, nil,
//	    cache.WithPrefix("sendbox"),
//	)
func NewRedis[V any](client redis.UniversalClient, m Marshaler[V], opts ...RedisOption) *Redis[V] {
	s := redisSettings{ttl: defaultRedisTTL}
	for _, opt := range opts {
		opt(&s)
	}

	if m == nil {
		m = jsonCodec[V]{}
	}

	return &Redis[V]{
		client: client,
		codec:  m,
		prefix: s.prefix,
		ttl:    s.ttl,
	}
}

// Get fetches and decodes the value stored under key. A missing key is
// reported as ErrNotFound; the server handles expiry itself, so an expired
// key is simply missing.
func (r *Redis[V]) Get(ctx context.Context, key string) (V, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		var zero V
		return zero, ErrNotFound
	case err != nil:
		var zero V
		return zero, err
	}

	return r.codec.Unmarshal(data)
}

// Set encodes value and writes it under key. A zero ttl applies the
// configured default; a negative ttl writes the key without expiry, which
// the server expresses as a TTL of zero.
func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := r.codec.Marshal(value)
	if err != nil {
		return err
	}

	if ttl == 0 {
		ttl = r.ttl
	}

	return r.client.Set(ctx, r.key(key), data, max(ttl, 0)).Err()
}

// Delete removes key. The server treats deleting a missing key as a no-op.
func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// Close does nothing. The client belongs to the caller and usually closes
// through a shutdown hook.
func (r *Redis[V]) Close() error {
	return nil
}

func (r *Redis[V]) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

var _ Cache[any] = (*Redis[any])(nil)
