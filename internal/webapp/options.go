package webapp

import "log/slog"

// Option customizes an App at construction time.
type Option func(*App)

// WithMiddleware appends global middleware, which runs in the order given
// on every request.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middleware = append(a.middleware, mw...)
	}
}

// WithHandlers registers route owners. Every handler's Routes method runs
// once while New assembles the router.
func WithHandlers(hs ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, hs...)
	}
}

// WithErrorHandler sets the translator for errors returned by handlers.
//
// Example:
//
//	webapp.WithErrorHandler(func(c webapp.Context, err error) error {
//	    code := http.StatusInternalServerError
//	    if httpErr := webapp.AsHTTPError(err); httpErr != nil {
//	        code = httpErr.Code
//	    }
//	    return c.String(code, err.Error())
//	})
func WithErrorHandler(fn ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = fn
	}
}

// WithNotFoundHandler replaces the stock 404 response.
func WithNotFoundHandler(fn HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = fn
	}
}

// WithLogger sets the logger handed to request contexts and the server
// runtime. Logging stays disabled when l is nil.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithHealthChecks enables the probe endpoints. Liveness reports OK while
// the process runs; readiness also runs every configured check.
//
// Example:
//
//	webapp.WithHealthChecks(
//	    webapp.WithReadinessCheck("mandrill", mandrill.Healthcheck(client)),
//	    webapp.WithReadinessCheck("redis", redis.Healthcheck(rdb)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		p := defaultProbes()
		for _, opt := range opts {
			opt(p)
		}
		a.probes = p
	}
}
