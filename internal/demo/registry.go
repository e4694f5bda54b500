package demo

import (
	"context"
	"fmt"
	"log/slog"
)

// Registry holds the runnable demos in registration order. Registration
// happens once at startup; lookups and runs are read-only afterwards, so
// the registry needs no locking.
type Registry struct {
	order []string
	demos map[string]Demo
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{demos: make(map[string]Demo)}
}

// Register adds a demo under its name. It panics on an empty name, a nil
// Run, or a name already taken; the catalog is static, so any of those is
// a programming error.
func (r *Registry) Register(d Demo) *Registry {
	if d.Name == "" {
		panic("demo: register with empty name")
	}
	if d.Run == nil {
		panic(fmt.Sprintf("demo: register %q with nil run", d.Name))
	}
	if _, exists := r.demos[d.Name]; exists {
		panic(fmt.Sprintf("demo: duplicate name %q", d.Name))
	}
	r.order = append(r.order, d.Name)
	r.demos[d.Name] = d
	return r
}

// Lookup returns the demo registered under name, or ErrUnknownDemo.
func (r *Registry) Lookup(name string) (Demo, error) {
	d, ok := r.demos[name]
	if !ok {
		return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
	return d, nil
}

// List returns the demos in registration order.
func (r *Registry) List() []Demo {
	out := make([]Demo, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.demos[name])
	}
	return out
}

// Run dispatches one demo by name. Unknown names return ErrUnknownDemo
// with a nil report and no demo code runs. Otherwise the returned report
// always carries the full outcome, and the error mirrors the run's
// failure so callers can pick an exit code without inspecting the report.
func (r *Registry) Run(ctx context.Context, env *Env, name string, params Params) (*Report, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	rep := NewReport(d.Name, d.Title)
	log := env.log().With(slog.String("demo", d.Name), slog.String("run_id", rep.RunID))
	log.InfoContext(ctx, "demo starting")

	start := env.now()
	runErr := d.Run(ctx, env, params, rep)
	rep.finish(env.now().Sub(start), runErr)

	if runErr != nil {
		log.ErrorContext(ctx, "demo failed", slog.Any("error", runErr), slog.Duration("duration", rep.Duration))
		return rep, runErr
	}
	log.InfoContext(ctx, "demo finished", slog.Duration("duration", rep.Duration))
	return rep, nil
}
