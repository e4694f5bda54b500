package webapp

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sendbox/pkg/health"
)

// probes holds the liveness and readiness endpoint setup.
type probes struct {
	live   string
	ready  string
	checks health.Checks
}

func defaultProbes() *probes {
	return &probes{
		live:   "/health/live",
		ready:  "/health/ready",
		checks: make(health.Checks),
	}
}

// mount registers both probe endpoints on the router.
func (p *probes) mount(r chi.Router, log *slog.Logger) {
	r.Get(p.live, health.LivenessHandler())
	r.Get(p.ready, health.ReadinessHandler(p.checks, health.WithLogger(log)))
}

// HealthOption configures the probe endpoints.
type HealthOption func(*probes)

// WithLivenessPath moves the liveness endpoint. The default is /health/live.
func WithLivenessPath(path string) HealthOption {
	return func(p *probes) {
		if path != "" {
			p.live = path
		}
	}
}

// WithReadinessPath moves the readiness endpoint. The default is /health/ready.
func WithReadinessPath(path string) HealthOption {
	return func(p *probes) {
		if path != "" {
			p.ready = path
		}
	}
}

// WithReadinessCheck adds a named dependency check to the readiness probe.
// All checks run in parallel on every probe request.
//
// Example:
//
//	webapp.WithReadinessCheck("mandrill", mandrill.Healthcheck(client))
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(p *probes) {
		p.checks[name] = fn
	}
}
