package views

import "html/template"

// IndexData drives the demo launch form.
type IndexData struct {
	Demos      []DemoOption
	Catalog    []TemplateRow
	CatalogErr string
}

// DemoOption is one selectable demo with its optional parameter fields.
type DemoOption struct {
	Name    string
	Title   string
	Summary string
	Params  []ParamField
}

// ParamField describes one form input for a demo. Inputs are named
// "param.<demo>.<field>" so hidden fieldsets of unselected demos cannot
// shadow the selected one on submit.
type ParamField struct {
	Name        string
	Label       string
	Placeholder string
}

// TemplateRow is one stored vendor template shown on the form page.
type TemplateRow struct {
	Name      string
	Slug      string
	Status    string
	UpdatedAt string
}

// ReportData drives the run report page.
type ReportData struct {
	RunID    string
	Name     string
	Title    string
	OK       bool
	State    string
	Lines    []string
	Duration string
	// Preview must be sanitized before it gets here; the template prints
	// it unescaped.
	Preview template.HTML
}

// ErrorData drives the error page.
type ErrorData struct {
	Code      int
	Status    string
	Message   string
	RequestID string
}
