package redis

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpen_RejectsBadURLs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty URL", func(t *testing.T) {
		t.Parallel()

		client, err := Open(ctx, "")
		require.Nil(t, client)
		require.ErrorIs(t, err, ErrEmptyConnectionURL)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		for _, url := range []string{
			"http://localhost:6379",
			"localhost:6379",
			"postgresql://localhost:6379",
		} {
			client, err := Open(ctx, url)
			require.Nil(t, client, url)
			require.ErrorIs(t, err, ErrFailedToParseURL, url)
		}
	})

	t.Run("unparsable URL", func(t *testing.T) {
		t.Parallel()

		client, err := Open(ctx, "redis://localhost:notaport")
		require.Nil(t, client)
		require.ErrorIs(t, err, ErrFailedToParseURL)
	})
}

func TestSettings(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		s := defaultSettings()
		require.Equal(t, 10, s.poolSize)
		require.Equal(t, 5, s.minIdle)
		require.Equal(t, 3, s.attempts)
		require.Equal(t, 5*time.Second, s.backoffStep)
		require.Equal(t, 5*time.Second, s.dialTimeout)
	})

	t.Run("options override defaults", func(t *testing.T) {
		t.Parallel()

		s := defaultSettings()
		WithPoolSize(20)(s)
		WithMinIdleConns(8)(s)
		WithRetry(7, 2*time.Second)(s)
		WithDialTimeout(10 * time.Second)(s)

		require.Equal(t, 20, s.poolSize)
		require.Equal(t, 8, s.minIdle)
		require.Equal(t, 7, s.attempts)
		require.Equal(t, 2*time.Second, s.backoffStep)
		require.Equal(t, 10*time.Second, s.dialTimeout)
	})
}

func TestHealthcheck_NilClient(t *testing.T) {
	t.Parallel()

	err := Healthcheck(nil)(context.Background())
	require.ErrorIs(t, err, ErrHealthcheckFailed)
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	t.Run("closes the client", func(t *testing.T) {
		t.Parallel()

		closer := &fakeCloser{}
		require.NoError(t, Shutdown(closer)(context.Background()))
		require.True(t, closer.closed)
	})

	t.Run("reports the close error", func(t *testing.T) {
		t.Parallel()

		closeErr := errors.New("connection reset")
		closer := &fakeCloser{err: closeErr}

		err := Shutdown(closer)(context.Background())
		require.ErrorIs(t, err, closeErr)
		require.True(t, closer.closed)
	})
}

func TestSleep(t *testing.T) {
	t.Parallel()

	t.Run("cancelled context cuts the wait short", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := sleep(ctx, 10*time.Second)

		require.ErrorIs(t, err, context.Canceled)
		require.Less(t, time.Since(start), time.Second)
	})

	t.Run("waits the full duration otherwise", func(t *testing.T) {
		t.Parallel()

		d := 50 * time.Millisecond
		start := time.Now()

		require.NoError(t, sleep(context.Background(), d))
		require.GreaterOrEqual(t, time.Since(start), d)
	})
}

type fakeCloser struct {
	closed bool
	err    error
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

var _ io.Closer = (*fakeCloser)(nil)
