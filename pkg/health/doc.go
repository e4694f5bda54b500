// Package health serves liveness and readiness probes over plain HTTP.
//
// [LivenessHandler] answers 200 unconditionally and only proves the
// process is alive. [ReadinessHandler] runs a named set of [Checks] in
// parallel under a shared timeout and answers 200 when everything passes
// or 503 when anything fails, so an orchestrator can pull the instance
// out of rotation while a dependency is down.
//
// A check is any func(context.Context) error. The mandrill and redis
// packages expose ready-made ones:
//
//	mux.HandleFunc("GET /health/live", health.LivenessHandler())
//	mux.HandleFunc("GET /health/ready", health.ReadinessHandler(health.Checks{
//	    "mandrill": mandrill.Healthcheck(client),
//	    "redis":    redis.Healthcheck(conn),
//	}, health.WithLogger(log)))
//
// Responses are plain "OK" or "Service Unavailable" by default, which
// keeps probe configuration trivial. Appending ?format=json or sending
// Accept: application/json switches to a structured body that names each
// failing check:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "mandrill": {"status": "healthy"},
//	    "redis": {"status": "unhealthy", "error": "redis: healthcheck failed"}
//	  }
//	}
//
// The probe deadline defaults to five seconds; [WithTimeout] changes it,
// and [WithLogger] surfaces failed checks in the server log.
package health
