package demo

import (
	"context"
	"time"
)

// defaultScheduleDelay is how far ahead a scheduled run lands when no
// delay parameter is given.
const defaultScheduleDelay = time.Hour

var scheduled = Demo{
	Name:    "scheduled",
	Title:   "Scheduled send",
	Summary: "Hand the vendor a message with a future send_at; the account must allow scheduling.",
	Params: append([]Param{
		{Name: "delay", Label: "Delay", Placeholder: "Go duration, default 1h"},
	}, messageParams...),
	Run: runScheduled,
}

func runScheduled(ctx context.Context, env *Env, params Params, rep *Report) error {
	delay := defaultScheduleDelay
	if raw := params.Get("delay"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		switch {
		case err != nil:
			rep.Warnf("invalid delay %q; using %s", raw, defaultScheduleDelay)
		case parsed <= 0:
			rep.Warnf("delay must be positive; using %s", defaultScheduleDelay)
		default:
			delay = parsed
		}
	}

	msg := env.Builder.Message(overridesFrom(params))
	rcpt := msg.Recipients[0]

	sendAt := env.now().Add(delay).UTC()
	msg.SendAt = sendAt
	if msg.Subject == "" {
		msg.Subject = "A message from the past"
	}
	msg.Text = "This message was queued by the Sendbox scheduled demo at " +
		env.now().UTC().Format(time.RFC1123) + " and asked to go out " + delay.String() + " later."

	rep.Linef("delivery requested for %s (UTC)", sendAt.Format("2006-01-02 15:04:05"))
	rep.Linef("sending %q to %s", msg.Subject, rcpt.Address)
	results, err := env.Sender.Send(ctx, msg)
	if err != nil {
		return err
	}
	rep.Results(results)
	return nil
}
