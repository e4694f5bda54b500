package webapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Server timeouts, fixed for every Run.
const (
	serverReadTimeout       = 15 * time.Second
	serverReadHeaderTimeout = 5 * time.Second
	serverWriteTimeout      = 30 * time.Second
	serverIdleTimeout       = 120 * time.Second
	serverMaxHeaderBytes    = 1 << 20
	shutdownGrace           = 30 * time.Second
)

// RunOption adjusts how Run serves and shuts down.
type RunOption func(*runConfig)

type runConfig struct {
	grace  time.Duration
	hooks  []func(context.Context) error
	parent context.Context
}

// WithShutdownTimeout sets the graceful shutdown deadline, covering both
// in-flight requests and shutdown hooks. Defaults to 30 seconds.
func WithShutdownTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.grace = d
		}
	}
}

// WithShutdownHook queues a cleanup function for shutdown.
// Hooks run in registration order, each under the shutdown deadline.
//
// Example:
//
//	app.Run(addr, webapp.WithShutdownHook(redis.Shutdown(client)))
func WithShutdownHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.hooks = append(c.hooks, fn)
		}
	}
}

// WithBaseContext sets the context the signal handler derives from.
// Cancelling it triggers the same graceful shutdown as SIGINT or SIGTERM.
func WithBaseContext(ctx context.Context) RunOption {
	return func(c *runConfig) {
		if ctx != nil {
			c.parent = ctx
		}
	}
}

// Run starts the HTTP server on addr and blocks until shutdown. The
// listener is bound before the serve loop starts, so a taken port fails
// fast instead of surfacing on the first request.
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := &runConfig{grace: shutdownGrace}
	for _, opt := range opts {
		opt(cfg)
	}
	if addr == "" {
		addr = ":8080"
	}

	parent := cfg.parent
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	server := &http.Server{
		Handler:           a.router,
		ReadTimeout:       serverReadTimeout,
		WriteTimeout:      serverWriteTimeout,
		IdleTimeout:       serverIdleTimeout,
		ReadHeaderTimeout: serverReadHeaderTimeout,
		MaxHeaderBytes:    serverMaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Serve(ln) }()
	a.logger.Info("http server listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutdown started")
	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.grace)
	defer cancel()

	var failures []error
	if err := server.Shutdown(stopCtx); err != nil {
		failures = append(failures, err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		failures = append(failures, err)
	}
	for _, hook := range cfg.hooks {
		if err := hook(stopCtx); err != nil {
			a.logger.Error("shutdown hook error", slog.Any("error", err))
			failures = append(failures, err)
		}
	}
	if len(failures) > 0 {
		return errors.Join(failures...)
	}

	a.logger.Info("shutdown complete")
	return nil
}
