package demo

import (
	"context"
	"io/fs"

	"github.com/dmitrymomot/sendbox/pkg/mailer"
)

var fullOptions = Demo{
	Name:    "full-options",
	Title:   "Full options",
	Summary: "Send one message using copies, reply-to, headers, tags, metadata, tracking, and an inline image.",
	Params: append([]Param{
		{Name: "cc", Label: "CC email", Placeholder: "optional carbon copy"},
		{Name: "bcc", Label: "BCC email", Placeholder: "optional blind copy"},
		{Name: "reply_to", Label: "Reply-To email", Placeholder: "optional reply address"},
	}, messageParams...),
	Run: runFullOptions,
}

func runFullOptions(ctx context.Context, env *Env, params Params, rep *Report) error {
	msg := env.Builder.Message(overridesFrom(params))
	rcpt := msg.Recipients[0]

	if cc := params.Get("cc"); cc != "" {
		msg.AddCC(cc, "")
		rep.Linef("cc: %s", cc)
	}
	if bcc := params.Get("bcc"); bcc != "" {
		msg.AddBCC(bcc, "")
		rep.Linef("bcc: %s", bcc)
	}
	if replyTo := params.Get("reply_to"); replyTo != "" {
		msg.ReplyTo = replyTo
	}

	name := rcpt.Name
	if name == "" {
		name = "there"
	}
	if _, err := env.Composer.Compose(msg, mailer.ComposeParams{
		Template: "overview.md",
		Data:     map[string]any{"Name": name},
	}); err != nil {
		return err
	}

	logo, err := fs.ReadFile(assets, "assets/pixel.png")
	if err != nil {
		return err
	}
	msg.AddImage(mailer.Attachment{
		Filename:    "pixel.png",
		ContentType: "image/png",
		ContentID:   "logo",
		Content:     logo,
	})

	track := true
	msg.TrackOpens = &track
	msg.TrackClicks = &track
	msg.Important = true
	msg.Tags = []string{"sendbox", "full-options"}
	msg.Metadata = map[string]string{"run_id": rep.RunID}
	msg.Headers = map[string]string{"X-Sendbox-Demo": "full-options"}

	rep.Linef("sending %q to %s with tracking, tags, and an inline image", msg.Subject, rcpt.Address)
	results, err := env.Sender.Send(ctx, msg)
	if err != nil {
		return err
	}
	rep.Results(results)
	return nil
}
