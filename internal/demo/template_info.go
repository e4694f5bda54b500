package demo

import "context"

var templateInfo = Demo{
	Name:    "template-info",
	Title:   "Template info",
	Summary: "Fetch the stored template's record and list the account catalog through the cache.",
	Params:  []Param{templateNameParam},
	Run:     runTemplateInfo,
}

func runTemplateInfo(ctx context.Context, env *Env, params Params, rep *Report) error {
	templateName := params.GetDefault("template_name", defaultTemplateName)

	info, err := env.Client.GetTemplate(ctx, templateName)
	if err != nil {
		return err
	}

	rep.Linef("template %q (slug %s)", info.Name, info.Slug)
	rep.Linef("subject: %s", info.Subject)
	if info.PublishedAt != "" {
		rep.Linef("published at %s", info.PublishedAt)
	} else {
		rep.Linef("draft only, never published")
	}
	rep.Linef("created %s, updated %s", info.CreatedAt, info.UpdatedAt)
	if len(info.Labels) > 0 {
		rep.Linef("labels: %v", info.Labels)
	}

	catalog, err := env.Listing.List(ctx)
	if err != nil {
		return err
	}
	rep.Linef("account catalog: %d template(s)", len(catalog))
	return nil
}
