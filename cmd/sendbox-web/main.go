package main

import (
	"context"
	"os"
	"time"

	"github.com/dmitrymomot/sendbox/internal/demo"
	"github.com/dmitrymomot/sendbox/internal/handlers"
	"github.com/dmitrymomot/sendbox/internal/webapp"
	"github.com/dmitrymomot/sendbox/pkg/cache"
	"github.com/dmitrymomot/sendbox/pkg/config"
	"github.com/dmitrymomot/sendbox/pkg/logger"
	"github.com/dmitrymomot/sendbox/pkg/mailer"
	mandrillmail "github.com/dmitrymomot/sendbox/pkg/mailer/mandrill"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
	"github.com/dmitrymomot/sendbox/pkg/redis"
)

func main() {
	ctx := context.Background()

	var cfg Config
	config.MustLoad(&cfg)

	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, webapp.RequestIDExtractor())

	client, err := mandrill.New(cfg.Mandrill)
	if err != nil {
		log.Error("vendor client setup failed", "error", err.Error())
		os.Exit(1)
	}

	var (
		listingCache cache.Cache[[]mandrill.TemplateInfo]
		runOpts      []webapp.RunOption
		healthOpts   []webapp.HealthOption
	)
	healthOpts = append(healthOpts,
		webapp.WithReadinessCheck("mandrill", mandrill.Healthcheck(client)),
	)

	// The template listing cache lives in Redis when configured, so
	// several replicas share one vendor quota; a single process gets by
	// with the in-memory backend.
	if cfg.CacheRedisURL != "" {
		rdb := redis.MustOpen(ctx, cfg.CacheRedisURL)
		listingCache = cache.NewRedis[[]mandrill.TemplateInfo](rdb, nil,
			cache.WithPrefix("sendbox"),
		)
		healthOpts = append(healthOpts, webapp.WithReadinessCheck("redis", redis.Healthcheck(rdb)))
		runOpts = append(runOpts, webapp.WithShutdownHook(redis.Shutdown(rdb)))
	} else {
		mem := cache.NewMemory[[]mandrill.TemplateInfo]()
		listingCache = mem
		runOpts = append(runOpts, webapp.WithShutdownHook(func(context.Context) error {
			return mem.Close()
		}))
	}

	env := &demo.Env{
		Builder:       mailer.NewBuilder(cfg.Sender, log),
		Sender:        mandrillmail.New(client),
		Client:        client,
		Composer:      demo.NewComposer(cfg.Content),
		Listing:       demo.NewListing(client, listingCache, cfg.CacheTTL),
		AttachmentDir: cfg.AttachmentDir,
		Log:           log,
	}

	app := webapp.New(
		webapp.WithLogger(log),
		webapp.WithMiddleware(
			webapp.RequestID(),
			webapp.Recover(),
			webapp.Logging(),
			webapp.Timeout(time.Minute),
		),
		webapp.WithHandlers(handlers.NewPages(demo.Catalog(), env, cfg.RateLimitRPM)),
		webapp.WithErrorHandler(handlers.ErrorPage()),
		webapp.WithNotFoundHandler(handlers.NotFound()),
		webapp.WithHealthChecks(healthOpts...),
	)

	if err := app.Run(cfg.HTTPAddr, runOpts...); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}
