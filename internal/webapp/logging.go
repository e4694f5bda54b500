package webapp

import (
	"net/http"
	"time"
)

// Logging returns middleware that writes one structured line per request
// after the response is complete. Handler errors are answered by the error
// handler before this middleware regains control, so the log level follows
// the response status rather than a returned error.
func Logging() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			start := time.Now()
			err := next(c)

			status := c.ResponseWriter().Status()
			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"bytes", c.ResponseWriter().Size(),
				"duration", time.Since(start),
			}

			switch {
			case status >= http.StatusInternalServerError:
				c.LogError("request completed", attrs...)
			case status >= http.StatusBadRequest:
				c.LogWarn("request completed", attrs...)
			default:
				c.LogInfo("request completed", attrs...)
			}
			return err
		}
	}
}
