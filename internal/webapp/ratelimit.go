package webapp

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit returns middleware that caps requests per client IP within a
// one-minute window. The limiter's own 429 body is suppressed: over-limit
// requests return an HTTPError so the application's error handler renders
// the response, while the Retry-After and X-RateLimit-* headers httprate
// sets still go out with it.
func RateLimit(requestsPerMinute int) Middleware {
	limit := httprate.Limit(requestsPerMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(http.ResponseWriter, *http.Request) {}),
	)

	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			allowed := false
			limit(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				allowed = true
			})).ServeHTTP(c.Response(), c.Request())

			if !allowed {
				return ErrTooManyRequests("too many requests from this address; wait a minute and retry")
			}
			return next(c)
		}
	}
}
