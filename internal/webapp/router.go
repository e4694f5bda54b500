package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is what a Handler sees in Routes. It narrows chi to the verbs the
// harness uses plus grouping, per-route middleware, and mounting.
type Router interface {
	// GET routes GET requests matching the pattern to h.
	GET(pattern string, h HandlerFunc, mw ...Middleware)

	// POST routes POST requests matching the pattern to h.
	POST(pattern string, h HandlerFunc, mw ...Middleware)

	// PUT routes PUT requests matching the pattern to h.
	PUT(pattern string, h HandlerFunc, mw ...Middleware)

	// DELETE routes DELETE requests matching the pattern to h.
	DELETE(pattern string, h HandlerFunc, mw ...Middleware)

	// Group opens an inline group with its own middleware stack and no
	// pattern prefix.
	Group(fn func(Router))

	// Route opens a group under the pattern prefix.
	Route(pattern string, fn func(Router))

	// Use appends middleware to this router's stack.
	Use(mw ...Middleware)

	// Mount attaches a plain http.Handler at the pattern.
	Mount(pattern string, h http.Handler)
}

// chiRouter bridges the Router interface onto chi.
type chiRouter struct {
	mux chi.Router
	app *App
}

func (r *chiRouter) GET(pattern string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodGet, pattern, h, mw)
}

func (r *chiRouter) POST(pattern string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPost, pattern, h, mw)
}

func (r *chiRouter) PUT(pattern string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPut, pattern, h, mw)
}

func (r *chiRouter) DELETE(pattern string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodDelete, pattern, h, mw)
}

func (r *chiRouter) Group(fn func(Router)) {
	r.mux.Group(func(sub chi.Router) {
		fn(&chiRouter{mux: sub, app: r.app})
	})
}

func (r *chiRouter) Route(pattern string, fn func(Router)) {
	r.mux.Route(pattern, func(sub chi.Router) {
		fn(&chiRouter{mux: sub, app: r.app})
	})
}

func (r *chiRouter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.mux.Use(r.app.chiMiddleware(m))
	}
}

func (r *chiRouter) Mount(pattern string, h http.Handler) {
	r.mux.Mount(pattern, h)
}

// handle wraps h in its route middleware, innermost last registered, and
// hands the result to chi under the given verb.
func (r *chiRouter) handle(method, pattern string, h HandlerFunc, mw []Middleware) {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	r.mux.MethodFunc(method, pattern, r.app.httpHandler(h))
}

// chiMiddleware lifts a Middleware into chi's http.Handler form so both
// kinds can live on one router stack. Errors escaping the middleware go
// through the app error handler like handler errors do.
func (a *App) chiMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			forward := func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			}

			c := newContext(w, r, a.logger)
			if err := mw(forward)(c); err != nil {
				a.renderError(c, err)
			}
		})
	}
}
