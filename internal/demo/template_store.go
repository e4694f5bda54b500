package demo

import (
	"context"
	"errors"

	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

// defaultTemplateName is the account template the template demos operate
// on unless a template_name parameter says otherwise.
const defaultTemplateName = "sendbox-demo"

// demoTemplateCode is the stored template body. The mc:edit regions are
// the hooks the send and render demos override per call.
const demoTemplateCode = `<html><body>
<h1>*|COMPANY|* news</h1>
<div mc:edit="main"><p>Default main content.</p></div>
<div mc:edit="footer"><p>You receive this because you ran the demo.</p></div>
</body></html>`

// templateNameParam is shared by every demo that targets a stored template.
var templateNameParam = Param{
	Name:        "template_name",
	Label:       "Template name",
	Placeholder: "default " + defaultTemplateName,
}

var storeTemplate = Demo{
	Name:    "store-template",
	Title:   "Store template",
	Summary: "Create the demo template in the account, or refresh it in place when the name is taken.",
	Params:  []Param{templateNameParam},
	Run:     runStoreTemplate,
}

func runStoreTemplate(ctx context.Context, env *Env, params Params, rep *Report) error {
	defaults := env.Builder.Defaults()
	tpl := &mandrill.Template{
		Name:      params.GetDefault("template_name", defaultTemplateName),
		FromEmail: defaults.FromEmail,
		FromName:  defaults.FromName,
		Subject:   "News from *|COMPANY|*",
		Code:      demoTemplateCode,
		Text:      "*|COMPANY|* news. Default main content.",
		Labels:    []string{"sendbox"},
		Publish:   true,
	}

	info, err := env.Client.AddTemplate(ctx, tpl)
	switch {
	case err == nil:
		rep.Linef("created template %q (slug %s)", info.Name, info.Slug)
	case isVendorError(err):
		// The add endpoint rejects names that already exist; refresh the
		// stored content instead.
		rep.Linef("template %q already exists; updating it", tpl.Name)
		info, err = env.Client.UpdateTemplate(ctx, tpl)
		if err != nil {
			return err
		}
		rep.Linef("updated template %q (slug %s)", info.Name, info.Slug)
	default:
		return err
	}

	if info.PublishedAt != "" {
		rep.Linef("published at %s", info.PublishedAt)
	}

	if err := env.Listing.Invalidate(ctx); err != nil {
		rep.Warnf("template cache not invalidated: %v", err)
	} else {
		rep.Linef("template cache invalidated")
	}
	return nil
}

// isVendorError reports whether err carries a vendor API error document,
// as opposed to transport or encoding failures.
func isVendorError(err error) bool {
	var apiErr *mandrill.APIError
	return errors.As(err, &apiErr)
}
