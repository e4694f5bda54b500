// Package mailer provides the message model, builder, and content renderer
// for transactional email, with delivery delegated to provider adapters.
//
// The package separates three concerns:
//
//   - Message: a fully-prepared outgoing message with recipients, bodies,
//     merge variables, attachments, and delivery flags
//   - Builder: resolves per-call overrides against configured defaults to
//     produce addressed Messages
//   - Renderer: converts markdown content files with YAML frontmatter into
//     HTML bodies with a plain-text alternative
//
// Delivery happens through the Sender interface; the mandrill subpackage
// implements it for the Mandrill API and reports one Result per recipient.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/sendbox/pkg/mailer"
//		mandrillmail "github.com/dmitrymomot/sendbox/pkg/mailer/mandrill"
//		"github.com/dmitrymomot/sendbox/pkg/mandrill"
//	)
//
//	client, _ := mandrill.New(mandrill.Config{APIKey: key})
//	sender := mandrillmail.New(client)
//	builder := mailer.NewBuilder(defaults, log)
//	renderer := mailer.NewRenderer(contentFS)
//
//	res, err := renderer.Render("base.html", "welcome.md", map[string]any{"Name": "Ann"})
//	if err != nil {
//		return err
//	}
//
//	msg := builder.Message(mailer.Overrides{RecipientEmail: "user@example.com"})
//	msg.Subject = res.Subject
//	msg.HTML = res.HTML
//	msg.Text = res.Text
//
//	results, err := sender.Send(ctx, msg)
//
// # Content files
//
// Content files are markdown with optional YAML frontmatter:
//
//	---
//	Subject: Welcome {{.Name}}
//	---
//	# Hello {{.Name}}
//
//	[!button|Open dashboard](https://app.example.com)
//
// The body and the Subject both execute as text templates against the
// render data. The [!button|Label](URL) syntax renders an inline-styled
// call-to-action anchor.
//
// # Override resolution
//
// The Builder fills sender and recipient identity from per-call Overrides
// when present and from Defaults otherwise. Defaults ship with placeholder
// addresses so the harness runs unconfigured; resolving to the placeholder
// recipient logs a warning instead of failing.
package mailer
