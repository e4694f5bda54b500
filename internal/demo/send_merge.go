package demo

import "context"

var mergeVars = Demo{
	Name:    "merge-vars",
	Title:   "Merge variables",
	Summary: "Personalize subject and body with vendor-side merge tags, mixing global defaults with a per-recipient override.",
	Params: append([]Param{
		{Name: "first_name", Label: "First name", Placeholder: "per-recipient FNAME value"},
	}, messageParams...),
	Run: runMergeVars,
}

func runMergeVars(ctx context.Context, env *Env, params Params, rep *Report) error {
	msg := env.Builder.Message(overridesFrom(params))
	rcpt := msg.Recipients[0]

	if msg.Subject == "" {
		msg.Subject = "Hello *|FNAME|*, your *|COMPANY|* update"
	}
	msg.HTML = "<p>Hi *|FNAME|*,</p>" +
		"<p>The greeting above was filled in by *|COMPANY|* on the vendor side. " +
		"The FNAME tag resolves from the recipient's own merge variables first " +
		"and falls back to the global value.</p>"
	msg.Text = "Hi *|FNAME|*, the greeting was filled in by *|COMPANY|* on the vendor side."

	msg.SetGlobalMergeVar("COMPANY", "Sendbox")
	msg.SetGlobalMergeVar("FNAME", "friend")

	if first := params.GetDefault("first_name", rcpt.Name); first != "" {
		msg.SetMergeVars(rcpt.Email, map[string]any{"FNAME": first})
		rep.Linef("recipient FNAME=%q overrides the global \"friend\"", first)
	} else {
		rep.Linef("no first name available; the global FNAME applies")
	}

	rep.Linef("sending %q to %s", msg.Subject, rcpt.Address)
	results, err := env.Sender.Send(ctx, msg)
	if err != nil {
		return err
	}
	rep.Results(results)
	return nil
}
