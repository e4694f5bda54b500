package demo

import "context"

var deleteTemplate = Demo{
	Name:    "delete-template",
	Title:   "Delete template",
	Summary: "Remove the stored template from the account and drop the cached catalog.",
	Params:  []Param{templateNameParam},
	Run:     runDeleteTemplate,
}

func runDeleteTemplate(ctx context.Context, env *Env, params Params, rep *Report) error {
	templateName := params.GetDefault("template_name", defaultTemplateName)

	info, err := env.Client.DeleteTemplate(ctx, templateName)
	if err != nil {
		return err
	}
	rep.Linef("deleted template %q (slug %s)", info.Name, info.Slug)

	if err := env.Listing.Invalidate(ctx); err != nil {
		rep.Warnf("template cache not invalidated: %v", err)
	} else {
		rep.Linef("template cache invalidated")
	}
	return nil
}
