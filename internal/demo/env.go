package demo

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sendbox/pkg/mailer"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

// MessageSender is what a demo needs from the delivery side: plain sends
// plus template sends. The adapter in pkg/mailer/mandrill satisfies it;
// tests substitute a mock.
type MessageSender interface {
	mailer.Sender
	SendWithTemplate(ctx context.Context, templateName string, regions map[string]string, msg *mailer.Message) ([]mailer.Result, error)
}

// Env bundles everything a demo needs to run. It is assembled once per
// process from configuration and passed explicitly to every run; demos
// never read process state on their own.
type Env struct {
	// Builder resolves sender and recipient identities for outgoing mail.
	Builder *mailer.Builder
	// Sender delivers prepared messages through the vendor.
	Sender MessageSender
	// Client is the raw vendor API client, for non-message operations.
	Client *mandrill.Client
	// Composer turns markdown content files into message bodies.
	Composer *mailer.Composer
	// Listing is the cached view of the vendor template catalog.
	Listing *Listing
	// AttachmentDir is the local directory scanned for attachment files.
	// Empty means no local files are attached.
	AttachmentDir string
	// Log receives structured progress events. Nil disables logging.
	Log *slog.Logger
	// Now supplies the current time. Nil means time.Now.
	Now func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Env) log() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.New(slog.DiscardHandler)
}
