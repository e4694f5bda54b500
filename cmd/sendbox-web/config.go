package main

import (
	"time"

	"github.com/dmitrymomot/sendbox/pkg/logger"
	"github.com/dmitrymomot/sendbox/pkg/mailer"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

// Config aggregates everything the web server reads from the environment.
type Config struct {
	HTTPAddr      string        `env:"HTTP_ADDR" envDefault:":8080"`
	RateLimitRPM  int           `env:"RATE_LIMIT_RPM" envDefault:"10"`
	AttachmentDir string        `env:"ATTACHMENT_DIR"`
	CacheRedisURL string        `env:"CACHE_REDIS_URL"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	Mandrill mandrill.Config
	Sender   mailer.Defaults
	Content  mailer.Config
	Log      logger.Config
	Sentry   logger.SentryConfig
}
