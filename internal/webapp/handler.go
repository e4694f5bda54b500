package webapp

// Handler is anything that can register its routes. The app calls Routes
// once during New, after the global middleware and the health endpoints
// are in place.
//
//	func (h *Pages) Routes(r webapp.Router) {
//	    r.GET("/", h.index)
//	    r.POST("/run", h.run, webapp.RateLimit(10))
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the shape of a route handler. A non-nil return value
// lands in the application's error handler instead of the client.
type HandlerFunc func(c Context) error

// Middleware decorates a HandlerFunc. It may inspect the request, cut the
// chain short, or wrap the response on the way out.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler translates handler errors into responses.
type ErrorHandler func(Context, error) error
