package mailer

import "log/slog"

// Placeholder identities baked into the defaults so the harness runs out of
// the box. A send resolving to the placeholder recipient is worth a warning
// because it usually means missing configuration.
const (
	placeholderRecipient = "recipient@example.com"
)

// Defaults supplies the identities used when a message omits them.
// Meant to sit inside the app config struct; caarlos0/env reads the tags.
type Defaults struct {
	FromEmail      string `env:"SENDER_EMAIL" envDefault:"sender@example.com"`
	FromName       string `env:"SENDER_NAME" envDefault:"Sendbox Demo"`
	RecipientEmail string `env:"RECIPIENT_EMAIL" envDefault:"recipient@example.com"`
	RecipientName  string `env:"RECIPIENT_NAME" envDefault:"Demo Recipient"`
}

// Overrides carries per-call values. A set field wins over the
// corresponding default; an empty field falls back to it.
type Overrides struct {
	FromEmail      string
	FromName       string
	RecipientEmail string
	RecipientName  string
	Subject        string
}

// Builder assembles Messages from configured defaults and per-call
// overrides. It performs no validation beyond supplying defaults and has no
// side effects other than the placeholder warning.
type Builder struct {
	defaults Defaults
	log      *slog.Logger
}

// NewBuilder creates a Builder. A nil logger disables the placeholder
// warning.
func NewBuilder(defaults Defaults, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Builder{defaults: defaults, log: log}
}

// Message resolves overrides against the defaults and returns a Message
// addressed to the resolved recipient. Resolution is per field: an override
// present wins, an override absent falls back to the default.
func (b *Builder) Message(ov Overrides) *Message {
	from := Address{Email: b.defaults.FromEmail, Name: b.defaults.FromName}
	if ov.FromEmail != "" {
		from.Email = ov.FromEmail
	}
	if ov.FromName != "" {
		from.Name = ov.FromName
	}

	rcpt := Address{Email: b.defaults.RecipientEmail, Name: b.defaults.RecipientName}
	if ov.RecipientEmail != "" {
		rcpt.Email = ov.RecipientEmail
	}
	if ov.RecipientName != "" {
		rcpt.Name = ov.RecipientName
	}

	if rcpt.Email == placeholderRecipient {
		b.log.Warn("recipient resolved to the placeholder address; set RECIPIENT_EMAIL or pass an override",
			slog.String("recipient", rcpt.Email))
	}

	msg := &Message{From: from, Subject: ov.Subject}
	msg.AddTo(rcpt.Email, rcpt.Name)
	return msg
}

// Defaults returns the configured default identities.
func (b *Builder) Defaults() Defaults {
	return b.defaults
}
