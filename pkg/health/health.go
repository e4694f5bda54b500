package health

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy marks a response whose checks all passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy marks a response with at least one failing check.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc probes one dependency. The mandrill and redis packages build
// closures with this signature, so their healthchecks plug in directly.
type CheckFunc func(ctx context.Context) error

// Checks maps a probe name to its check. The name shows up verbatim in the
// JSON readiness response.
type Checks map[string]CheckFunc

// Response is the JSON body of a readiness probe.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the outcome of a single probe.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type settings struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option adjusts how the readiness probe runs its checks.
type Option func(*settings)

// WithTimeout caps how long the whole probe may take. Checks still running
// when the deadline lands see their context cancelled.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger routes failed-check warnings to the given logger. Without it
// failures are only reported in the response body.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func newSettings(opts ...Option) settings {
	s := settings{
		timeout: defaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

type keyedCheck struct {
	name  string
	check Check
}

// evaluate runs every check in its own goroutine under a shared deadline
// and folds the results into one response. No checks means healthy.
func evaluate(ctx context.Context, checks Checks, s settings) Response {
	if len(checks) == 0 {
		return Response{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results := make(chan keyedCheck, len(checks))

	var wg sync.WaitGroup
	for name, fn := range checks {
		wg.Go(func() {
			results <- keyedCheck{name: name, check: runOne(ctx, name, fn, s.logger)}
		})
	}
	wg.Wait()
	close(results)

	resp := Response{
		Status: StatusHealthy,
		Checks: make(map[string]Check, len(checks)),
	}
	for r := range results {
		resp.Checks[r.name] = r.check
		if r.check.Status == StatusUnhealthy {
			resp.Status = StatusUnhealthy
		}
	}

	return resp
}

func runOne(ctx context.Context, name string, fn CheckFunc, log *slog.Logger) Check {
	if err := fn(ctx); err != nil {
		log.WarnContext(ctx, "health check failed",
			slog.String("check", name),
			slog.String("error", err.Error()),
		)
		return Check{Status: StatusUnhealthy, Error: err.Error()}
	}
	return Check{Status: StatusHealthy}
}
