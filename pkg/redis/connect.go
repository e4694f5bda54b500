package redis

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connection defaults. A small pool is enough for the web form plus the
// readiness probe; override per call when a deployment needs more.
const (
	defaultPoolSize    = 10
	defaultMinIdle     = 5
	defaultAttempts    = 3
	defaultBackoffStep = 5 * time.Second
	defaultDialTimeout = 5 * time.Second
)

// settings are the per-connection knobs applied on top of the URL.
type settings struct {
	poolSize    int
	minIdle     int
	attempts    int
	backoffStep time.Duration
	dialTimeout time.Duration
}

func defaultSettings() *settings {
	return &settings{
		poolSize:    defaultPoolSize,
		minIdle:     defaultMinIdle,
		attempts:    defaultAttempts,
		backoffStep: defaultBackoffStep,
		dialTimeout: defaultDialTimeout,
	}
}

// Option adjusts connection settings.
type Option func(*settings)

// WithPoolSize caps the connection pool.
func WithPoolSize(n int) Option {
	return func(s *settings) {
		s.poolSize = n
	}
}

// WithMinIdleConns keeps n warm connections in the pool.
func WithMinIdleConns(n int) Option {
	return func(s *settings) {
		s.minIdle = n
	}
}

// WithRetry sets how many connection attempts Open makes and the backoff
// step between them. The wait grows linearly: step after the first
// failure, twice the step after the second, and so on.
func WithRetry(attempts int, step time.Duration) Option {
	return func(s *settings) {
		s.attempts = attempts
		s.backoffStep = step
	}
}

// WithDialTimeout bounds each TCP connection attempt.
func WithDialTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.dialTimeout = d
	}
}

// Open connects to the server named by url and verifies the connection
// with a ping before returning it. Only redis:// and rediss:// URLs are
// accepted. An unreachable server is retried with linear backoff so a
// replica that starts before its Redis settles instead of crash-looping.
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	parsed, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}
	parsed.PoolSize = s.poolSize
	parsed.MinIdleConns = s.minIdle
	parsed.DialTimeout = s.dialTimeout

	return dial(ctx, parsed, s)
}

// MustOpen is Open for process startup: any failure logs and exits.
func MustOpen(ctx context.Context, url string, opts ...Option) redis.UniversalClient {
	client, err := Open(ctx, url, opts...)
	if err != nil {
		slog.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	return client
}

// dial pings until a connection succeeds or the attempts run out.
func dial(ctx context.Context, opts *redis.Options, s *settings) (redis.UniversalClient, error) {
	attempts := max(s.attempts, 1)

	for i := 1; i <= attempts; i++ {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts {
			break
		}
		if err := sleep(ctx, time.Duration(i)*s.backoffStep); err != nil {
			return nil, errors.Join(ErrConnectionFailed, err)
		}
	}

	return nil, ErrConnectionFailed
}

// sleep blocks for d unless ctx ends first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
