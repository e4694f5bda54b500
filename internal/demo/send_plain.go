package demo

import (
	"context"

	"github.com/dmitrymomot/sendbox/pkg/mailer"
)

var plainSend = Demo{
	Name:    "plain-send",
	Title:   "Plain send",
	Summary: "Render the welcome message from markdown and deliver it through messages/send.",
	Params:  messageParams,
	Run:     runPlainSend,
}

func runPlainSend(ctx context.Context, env *Env, params Params, rep *Report) error {
	msg := env.Builder.Message(overridesFrom(params))
	rcpt := msg.Recipients[0]

	name := rcpt.Name
	if name == "" {
		name = "there"
	}
	if _, err := env.Composer.Compose(msg, mailer.ComposeParams{
		Template: "welcome.md",
		Data:     map[string]any{"Name": name},
	}); err != nil {
		return err
	}

	rep.Linef("sending %q to %s", msg.Subject, rcpt.Address)
	results, err := env.Sender.Send(ctx, msg)
	if err != nil {
		return err
	}
	rep.Results(results)
	return nil
}
