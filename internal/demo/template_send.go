package demo

import "context"

var sendTemplate = Demo{
	Name:    "send-template",
	Title:   "Send via template",
	Summary: "Deliver through the stored template, overriding its editable regions and merge tags per call.",
	Params:  append([]Param{templateNameParam}, messageParams...),
	Run:     runSendTemplate,
}

func runSendTemplate(ctx context.Context, env *Env, params Params, rep *Report) error {
	msg := env.Builder.Message(overridesFrom(params))
	rcpt := msg.Recipients[0]

	// Subject, sender, and body come from the stored template unless the
	// message overrides them, so only explicit values are set here.
	msg.SetGlobalMergeVar("COMPANY", "Sendbox")

	regions := map[string]string{
		"main": "<p>This main region was supplied by the send-template demo at run " + rep.RunID + ".</p>",
	}

	templateName := params.GetDefault("template_name", defaultTemplateName)
	rep.Linef("sending template %q to %s", templateName, rcpt.Address)
	results, err := env.Sender.SendWithTemplate(ctx, templateName, regions, msg)
	if err != nil {
		return err
	}
	rep.Results(results)
	return nil
}
