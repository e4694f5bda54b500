package main

import (
	"time"

	"github.com/dmitrymomot/sendbox/pkg/logger"
	"github.com/dmitrymomot/sendbox/pkg/mailer"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

// Config aggregates everything the CLI reads from the environment.
type Config struct {
	AttachmentDir string        `env:"ATTACHMENT_DIR"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	Mandrill mandrill.Config
	Sender   mailer.Defaults
	Content  mailer.Config
	Log      logger.Config
}
