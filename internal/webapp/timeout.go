package webapp

import (
	"context"
	"errors"
	"time"
)

// DefaultTimeout bounds request handling when Timeout receives a
// non-positive duration.
const DefaultTimeout = 30 * time.Second

// Timeout caps how long a handler may run. The deadline lands on the
// request context, so downstream vendor calls see it and abort early. A
// handler that overruns anyway yields a TimeoutError while its goroutine
// drains in the background.
func Timeout(d time.Duration) Middleware {
	if d <= 0 {
		d = DefaultTimeout
	}

	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), d)
			defer cancel()

			if rc, ok := c.(*httpContext); ok {
				rc.req = rc.req.WithContext(ctx)
			}

			result := make(chan error, 1)
			go func() {
				result <- next(c)
			}()

			select {
			case err := <-result:
				return err
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					c.LogWarn("request timeout", "timeout", d.String())
					return &TimeoutError{Duration: d}
				}
				return ctx.Err()
			}
		}
	}
}
