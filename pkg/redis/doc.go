// Package redis opens the shared cache backend.
//
// Open parses a redis:// or rediss:// URL, applies pool settings, and
// verifies the server with a ping before handing the client out. An
// unreachable server is retried with linear backoff, so a replica that
// starts before its Redis settles instead of crash-looping. MustOpen
// wraps Open for process startup, where a missing backend is fatal.
//
// Healthcheck and Shutdown adapt the client to the web app's readiness
// probe and shutdown hooks:
//
//	rdb := redis.MustOpen(ctx, cfg.CacheRedisURL)
//	app := webapp.New(
//	    webapp.WithHealthChecks(webapp.WithReadinessCheck("redis", redis.Healthcheck(rdb))),
//	)
//	err := app.Run(addr, webapp.WithShutdownHook(redis.Shutdown(rdb)))
package redis
