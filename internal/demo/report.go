package demo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sendbox/pkg/mailer"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

// State is the terminal outcome of a demo run.
type State string

// Run outcomes.
const (
	StateOK     State = "ok"
	StateFailed State = "failed"
)

// Report accumulates the outcome of a single demo run. Each run owns its
// report exclusively, so the type is not safe for concurrent writers.
type Report struct {
	// RunID is a fresh UUID identifying this run in logs and output.
	RunID string
	// Demo is the registry name of the demo that ran.
	Demo string
	// Title is the demo's human-readable label.
	Title string
	// State is set by the registry once the run finishes.
	State State
	// Duration is the wall time the run took.
	Duration time.Duration

	lines   []string
	preview string
}

// NewReport starts a report for one run of the named demo.
func NewReport(name, title string) *Report {
	return &Report{
		RunID: uuid.NewString(),
		Demo:  name,
		Title: title,
	}
}

// Linef appends a formatted progress line.
func (r *Report) Linef(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// Warnf appends a formatted warning line.
func (r *Report) Warnf(format string, args ...any) {
	r.lines = append(r.lines, "warning: "+fmt.Sprintf(format, args...))
}

// Result appends one per-recipient outcome line in the form
// "address: status [id] (reason)". The id and reason segments are omitted
// when the provider left them empty.
func (r *Report) Result(res mailer.Result) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", res.Email, res.Status)
	if res.ID != "" {
		fmt.Fprintf(&b, " [%s]", res.ID)
	}
	if res.RejectReason != "" {
		fmt.Fprintf(&b, " (%s)", res.RejectReason)
	}
	r.lines = append(r.lines, b.String())
}

// Results appends one outcome line per recipient, in provider order.
func (r *Report) Results(results []mailer.Result) {
	for _, res := range results {
		r.Result(res)
	}
}

// SetPreview stores raw HTML produced by the run, for example a rendered
// template. Consumers must sanitize it before display; String ignores it.
func (r *Report) SetPreview(html string) {
	r.preview = html
}

// Preview returns the raw HTML stored by SetPreview, if any.
func (r *Report) Preview() string {
	return r.preview
}

// Lines returns the accumulated lines in order.
func (r *Report) Lines() []string {
	return r.lines
}

// OK reports whether the run finished without an error.
func (r *Report) OK() bool {
	return r.State == StateOK
}

// finish records the terminal state. A non-nil error marks the run failed
// and surfaces the provider's message verbatim as the last line.
func (r *Report) finish(d time.Duration, err error) {
	r.Duration = d
	if err == nil {
		r.State = StateOK
		return
	}
	r.State = StateFailed

	var apiErr *mandrill.APIError
	if errors.As(err, &apiErr) {
		r.lines = append(r.lines, fmt.Sprintf("vendor error %s: %s", apiErr.Name, apiErr.Message))
		return
	}
	// Joined errors stringify across multiple lines; keep one line per entry.
	r.lines = append(r.lines, "error: "+strings.ReplaceAll(err.Error(), "\n", "; "))
}

// String renders the report for terminal output.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "demo %s (run %s)\n", r.Demo, r.RunID)
	for _, line := range r.lines {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	fmt.Fprintf(&b, "state: %s (%s)\n", r.State, r.Duration.Round(time.Millisecond))
	return b.String()
}
