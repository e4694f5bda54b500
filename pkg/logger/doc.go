// Package logger builds slog loggers with per-call context attributes and
// optional Sentry reporting.
//
// # Usage
//
// Create a logger from config:
//
//	log := logger.New(logger.Config{Level: "info", Format: "json"})
//	log.Info("http server listening", slog.String("addr", addr))
//
// Text format writes to stderr, which keeps logs out of stdout when a
// command prints results there:
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"})
//
// # Extractors
//
// A ContextExtractor pulls a log attribute out of context on every log
// call:
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
//			return slog.String("request_id", v), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(cfg, requestID)
//	log.InfoContext(ctx, "demo finished") // includes request_id
//
// Extractors run per log call, so request-scoped values stay fresh.
// NewContextHandler wraps any slog.Handler with the same behavior.
//
// # Sentry
//
// NewWithSentry forwards errors to Sentry in addition to local output:
//
//	log := logger.NewWithSentry(cfg, logger.SentryConfig{
//		DSN:      os.Getenv("SENTRY_DSN"),
//		MinLevel: slog.LevelWarn,
//	})
//
// If the DSN is empty or initialization fails, logging continues locally,
// making the same code path safe for development and production.
package logger
