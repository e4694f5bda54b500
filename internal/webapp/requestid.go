package webapp

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sendbox/pkg/logger"
)

// requestIDKey is the context key under which the request ID travels.
type requestIDKey struct{}

// DefaultRequestIDHeaders are checked, in order, for an ID assigned by an
// upstream proxy or load balancer.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

type requestIDSettings struct {
	generate       func() string
	responseHeader string
	headers        []string
}

// RequestIDOption tunes the RequestID middleware.
type RequestIDOption func(*requestIDSettings)

// WithRequestIDHeaders replaces the list of inbound headers checked for an
// existing ID.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(s *requestIDSettings) {
		s.headers = headers
	}
}

// WithRequestIDGenerator replaces the UUID generator used when no inbound
// header carries an ID.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(s *requestIDSettings) {
		s.generate = gen
	}
}

// RequestID tags every request with an ID, reusing an upstream one when a
// configured header carries it and minting a UUID otherwise. The ID lands
// in the request context and in the response X-Request-ID header.
func RequestID(opts ...RequestIDOption) Middleware {
	s := requestIDSettings{
		headers:        DefaultRequestIDHeaders,
		generate:       uuid.NewString,
		responseHeader: "X-Request-ID",
	}
	for _, opt := range opts {
		opt(&s)
	}

	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			id := inboundRequestID(c, s.headers)
			if id == "" {
				id = s.generate()
			}

			c.Set(requestIDKey{}, id)
			c.SetHeader(s.responseHeader, id)

			return next(c)
		}
	}
}

// inboundRequestID returns the first non-empty ID among the headers.
func inboundRequestID(c Context, headers []string) string {
	for _, h := range headers {
		if v := c.Header(h); v != "" {
			return v
		}
	}
	return ""
}

// RequestIDFromContext reads the request ID, or "" when unset.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// RequestIDExtractor adapts the request ID into a logger attribute so
// every log line written under a request context carries request_id.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := RequestIDFromContext(ctx); v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}
