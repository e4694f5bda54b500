package demo

import (
	"embed"

	"github.com/dmitrymomot/sendbox/pkg/mailer"
)

// content holds the markdown bodies and layouts the sending demos render.
//
//go:embed content
var content embed.FS

// assets holds files the demos attach or embed into messages.
//
//go:embed assets
var assets embed.FS

// NewComposer returns a composer over the embedded demo content. Process
// setup hands the result to Env.Composer.
func NewComposer(cfg mailer.Config) *mailer.Composer {
	renderer := mailer.NewRenderer(content,
		mailer.WithContentDir("content"),
		mailer.WithLayoutDir("content/layouts"),
	)
	return mailer.NewComposer(renderer, cfg)
}
