package demo

import (
	"context"

	"github.com/dmitrymomot/sendbox/pkg/mandrill"
	"github.com/dmitrymomot/sendbox/pkg/sanitizer"
)

// excerptRunes bounds the plain-text excerpt shown in the report.
const excerptRunes = 160

var renderTemplate = Demo{
	Name:    "render-template",
	Title:   "Render template",
	Summary: "Ask the vendor to render the stored template server-side and show the result without sending anything.",
	Params:  []Param{templateNameParam},
	Run:     runRenderTemplate,
}

func runRenderTemplate(ctx context.Context, env *Env, params Params, rep *Report) error {
	templateName := params.GetDefault("template_name", defaultTemplateName)

	html, err := env.Client.RenderTemplate(ctx, &mandrill.RenderRequest{
		TemplateName: templateName,
		TemplateContent: []mandrill.TemplateContent{
			{Name: "main", Content: "<p>Rendered server-side for run " + rep.RunID + ".</p>"},
		},
		MergeVars: []mandrill.Var{
			{Name: "COMPANY", Content: "Sendbox"},
		},
	})
	if err != nil {
		return err
	}

	rep.Linef("rendered template %q: %d bytes of HTML", templateName, len(html))
	rep.Linef("excerpt: %s", excerpt(sanitizer.StripHTML(html), excerptRunes))
	rep.SetPreview(html)
	return nil
}

// excerpt truncates s to at most n runes, marking the cut.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
