package webapp

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// App wires routing, middleware, and graceful shutdown. It is immutable
// after New; all configuration happens through options.
type App struct {
	router          chi.Router
	logger          *slog.Logger
	errorHandler    ErrorHandler
	notFoundHandler HandlerFunc
	probes          *probes
	middleware      []Middleware
	handlers        []Handler
}

// New creates an application from the given options.
//
// Example:
//
//	app := webapp.New(
//	    webapp.WithMiddleware(webapp.RequestID(), webapp.Recover()),
//	    webapp.WithHandlers(handlers.NewPages(registry, env, 10)),
//	    webapp.WithHealthChecks(webapp.WithReadinessCheck("mandrill", check)),
//	)
func New(opts ...Option) *App {
	a := &App{router: chi.NewRouter(), logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(a)
	}
	a.mountRoutes()
	return a
}

// Router returns the underlying chi router, mainly for tests that drive
// the app through httptest.
func (a *App) Router() chi.Router {
	return a.router
}

// mountRoutes registers everything on the chi router. Middleware must be
// attached before the first route, so the order here is fixed.
func (a *App) mountRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.httpHandler(a.notFoundHandler))
	}
	for _, mw := range a.middleware {
		a.router.Use(a.chiMiddleware(mw))
	}
	if a.probes != nil {
		a.probes.mount(a.router, a.logger)
	}
	ra := &chiRouter{mux: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(ra)
	}
}

// httpHandler converts a HandlerFunc into http.HandlerFunc, sending any
// returned error through renderError.
func (a *App) httpHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a.logger)
		if err := h(c); err != nil {
			a.renderError(c, err)
		}
	}
}

// renderError turns a handler error into a response. The configured error
// handler gets the first shot; when it is absent, fails, or writes nothing,
// the client gets a plain 500.
func (a *App) renderError(c Context, err error) {
	if c.Written() {
		return
	}
	if a.errorHandler != nil && a.errorHandler(c, err) == nil {
		return
	}
	if c.Written() {
		return
	}
	http.Error(c.Response(), "Internal Server Error", http.StatusInternalServerError)
}
