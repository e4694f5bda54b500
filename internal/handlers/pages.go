package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/sendbox/internal/demo"
	"github.com/dmitrymomot/sendbox/internal/views"
	"github.com/dmitrymomot/sendbox/internal/webapp"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
	"github.com/dmitrymomot/sendbox/pkg/sanitizer"
)

// Pages serves the demo launch form and the run endpoint.
type Pages struct {
	registry *demo.Registry
	env      *demo.Env
	runRPM   int
}

// NewPages creates the page handler. requestsPerMinute caps POST /run per
// client IP; zero or negative disables the limit.
func NewPages(registry *demo.Registry, env *demo.Env, requestsPerMinute int) *Pages {
	return &Pages{
		registry: registry,
		env:      env,
		runRPM:   requestsPerMinute,
	}
}

// Routes implements the webapp.Handler interface.
func (h *Pages) Routes(r webapp.Router) {
	r.GET("/", h.index)
	if h.runRPM > 0 {
		r.POST("/run", h.run, webapp.RateLimit(h.runRPM))
	} else {
		r.POST("/run", h.run)
	}
}

// index shows the launch form with the demo catalog and, when the vendor
// is reachable, the stored template listing.
func (h *Pages) index(c webapp.Context) error {
	data := views.IndexData{Demos: demoOptions(h.registry)}

	if h.env.Listing != nil {
		infos, err := h.env.Listing.List(c.Context())
		if err != nil {
			c.LogWarn("template listing unavailable", "error", err.Error())
			data.CatalogErr = "Stored templates are unavailable right now."
		} else {
			data.Catalog = catalogRows(infos)
		}
	}

	return c.HTML(http.StatusOK, views.Pages(), "index.html", data)
}

// run dispatches the selected demo and renders its report. An unknown
// demo name renders the error page without running anything; a demo that
// ran and failed still gets the report page, failure state included.
func (h *Pages) run(c webapp.Context) error {
	name := c.Form("demo")
	if name == "" {
		return webapp.ErrBadRequest("Pick a demo to run.")
	}

	d, err := h.registry.Lookup(name)
	if err != nil {
		return webapp.ErrBadRequest("There is no demo named " + strconv.Quote(name) + ".")
	}

	params := demo.Params{}
	for _, p := range d.Params {
		if v := strings.TrimSpace(c.Form("param." + d.Name + "." + p.Name)); v != "" {
			params[p.Name] = v
		}
	}

	rep, err := h.registry.Run(c.Context(), h.env, d.Name, params)
	if rep == nil {
		return err
	}

	return c.HTML(http.StatusOK, views.Pages(), "report.html", reportData(rep))
}

func demoOptions(registry *demo.Registry) []views.DemoOption {
	demos := registry.List()
	opts := make([]views.DemoOption, 0, len(demos))
	for _, d := range demos {
		opt := views.DemoOption{
			Name:    d.Name,
			Title:   d.Title,
			Summary: d.Summary,
			Params:  make([]views.ParamField, 0, len(d.Params)),
		}
		for _, p := range d.Params {
			opt.Params = append(opt.Params, views.ParamField{
				Name:        p.Name,
				Label:       p.Label,
				Placeholder: p.Placeholder,
			})
		}
		opts = append(opts, opt)
	}
	return opts
}

func catalogRows(infos []mandrill.TemplateInfo) []views.TemplateRow {
	rows := make([]views.TemplateRow, 0, len(infos))
	for _, info := range infos {
		status := "draft"
		if info.PublishedAt != "" {
			status = "published"
		}
		rows = append(rows, views.TemplateRow{
			Name:      info.Name,
			Slug:      info.Slug,
			Status:    status,
			UpdatedAt: info.UpdatedAt,
		})
	}
	return rows
}

func reportData(rep *demo.Report) views.ReportData {
	data := views.ReportData{
		RunID:    rep.RunID,
		Name:     rep.Demo,
		Title:    rep.Title,
		OK:       rep.OK(),
		State:    string(rep.State),
		Lines:    rep.Lines(),
		Duration: rep.Duration.String(),
	}
	if preview := rep.Preview(); preview != "" {
		data.Preview = template.HTML(sanitizer.SanitizeHTML(preview))
	}
	return data
}
