// Package webapp is the small HTTP layer the harness runs on: chi routing
// behind a Context-based handler signature, option-configured setup, and a
// server runtime with graceful shutdown.
//
// # Building Blocks
//
//   - App: Routing, middleware, and lifecycle, configured via New options
//   - Context: Request/response access plus render and log helpers
//   - Router: Interface handlers use to declare routes
//   - HandlerFunc: Route handlers returning errors
//   - Middleware: Wraps HandlerFunc for cross-cutting concerns
//   - ErrorHandler: Renders handler errors
//
// # Application Setup
//
//	app := webapp.New(
//	    webapp.WithLogger(log),
//	    webapp.WithMiddleware(webapp.RequestID(), webapp.Recover(), webapp.Logging()),
//	    webapp.WithHandlers(handlers.NewPages(registry, env, cfg.RateLimitRPM)),
//	    webapp.WithErrorHandler(handlers.ErrorPage()),
//	    webapp.WithHealthChecks(
//	        webapp.WithReadinessCheck("mandrill", mandrill.Healthcheck(client)),
//	    ),
//	)
//	err := app.Run(":8080", webapp.WithShutdownHook(redis.Shutdown(rdb)))
//
// # Handlers and Errors
//
// Handlers receive a Context and return an error. Returning an *HTTPError
// picks the response status; any other error renders as a 500. A handler
// that already wrote its response must return nil.
//
// # Built-in Middleware
//
// RequestID assigns tracking IDs and feeds them to the logger through
// RequestIDExtractor. Recover turns panics into errors. Timeout bounds
// handler execution. RateLimit caps per-IP request rates on the routes it
// is attached to. Logging emits one line per request.
package webapp
