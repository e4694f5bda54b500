package demo

import (
	"context"

	"github.com/dmitrymomot/sendbox/pkg/mailer"
)

// Demo is a single runnable scenario against the vendor API. Each demo is
// self-contained: it builds whatever it needs from Env and Params, performs
// one vendor interaction, and writes its outcome to the report.
type Demo struct {
	// Name is the stable identifier used by dispatchers (form value, CLI arg).
	Name string
	// Title is the human-readable label shown in the selector and report.
	Title string
	// Summary is a one-line description for the form page.
	Summary string
	// Params lists the optional free-text inputs the demo understands.
	Params []Param
	// Run executes the scenario.
	Run RunFunc
}

// RunFunc executes a demo against the environment, writing progress to rep.
// A returned error marks the run as failed; the registry records it on the
// report, so implementations only return it.
type RunFunc func(ctx context.Context, env *Env, params Params, rep *Report) error

// Param describes one free-text input a demo accepts. All params are
// optional; demos fall back to environment defaults for anything left blank.
type Param struct {
	Name        string
	Label       string
	Placeholder string
}

// Params holds the raw parameter values a dispatcher collected, keyed by
// Param.Name. A nil map is valid and behaves as all-empty.
type Params map[string]string

// Get returns the value for name, or "" when unset.
func (p Params) Get(name string) string {
	return p[name]
}

// GetDefault returns the value for name, or def when the value is empty.
func (p Params) GetDefault(name, def string) string {
	if v := p[name]; v != "" {
		return v
	}
	return def
}

// messageParams are the inputs shared by every demo that sends a message.
var messageParams = []Param{
	{Name: "to", Label: "Recipient email", Placeholder: "overrides RECIPIENT_EMAIL"},
	{Name: "to_name", Label: "Recipient name", Placeholder: "overrides RECIPIENT_NAME"},
	{Name: "subject", Label: "Subject", Placeholder: "overrides the demo subject"},
}

// overridesFrom maps the shared message params onto builder overrides.
// Empty values fall through to the configured defaults inside the builder.
func overridesFrom(p Params) mailer.Overrides {
	return mailer.Overrides{
		RecipientEmail: p.Get("to"),
		RecipientName:  p.Get("to_name"),
		Subject:        p.Get("subject"),
	}
}
