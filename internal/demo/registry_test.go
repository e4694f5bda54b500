package demo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopRun(context.Context, *Env, Params, *Report) error { return nil }

func TestRegistry_ListKeepsRegistrationOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Register(Demo{Name: "third", Run: noopRun}).
		Register(Demo{Name: "first", Run: noopRun}).
		Register(Demo{Name: "second", Run: noopRun})

	names := make([]string, 0, 3)
	for _, d := range r.List() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"third", "first", "second"}, names)
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Register(Demo{Name: "ping", Title: "Ping", Run: noopRun})

	d, err := r.Lookup("ping")
	require.NoError(t, err)
	assert.Equal(t, "Ping", d.Title)

	_, err = r.Lookup("nope")
	require.ErrorIs(t, err, ErrUnknownDemo)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRegistry_RegisterPanics(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			NewRegistry().Register(Demo{Run: noopRun})
		})
	})

	t.Run("nil run", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			NewRegistry().Register(Demo{Name: "broken"})
		})
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			NewRegistry().
				Register(Demo{Name: "ping", Run: noopRun}).
				Register(Demo{Name: "ping", Run: noopRun})
		})
	})
}

func TestRegistry_Run_UnknownNameRunsNothing(t *testing.T) {
	t.Parallel()

	invoked := false
	r := NewRegistry().Register(Demo{Name: "ping", Run: func(context.Context, *Env, Params, *Report) error {
		invoked = true
		return nil
	}})

	rep, err := r.Run(context.Background(), &Env{}, "does-not-exist", nil)
	require.ErrorIs(t, err, ErrUnknownDemo)
	assert.Nil(t, rep)
	assert.False(t, invoked, "no demo may run on an unknown name")
}

func TestRegistry_Run_Success(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Register(Demo{Name: "ping", Title: "Ping", Run: func(_ context.Context, _ *Env, _ Params, rep *Report) error {
		rep.Linef("hello")
		return nil
	}})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ticks := 0
	env := &Env{Now: func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * 50 * time.Millisecond)
	}}

	rep, err := r.Run(context.Background(), env, "ping", nil)
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.True(t, rep.OK())
	assert.Equal(t, "ping", rep.Demo)
	assert.Equal(t, "Ping", rep.Title)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 50*time.Millisecond, rep.Duration)
	assert.Equal(t, []string{"hello"}, rep.Lines())
}

func TestRegistry_Run_FailureMirroredInReportAndError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := NewRegistry().Register(Demo{Name: "ping", Run: func(context.Context, *Env, Params, *Report) error {
		return boom
	}})

	rep, err := r.Run(context.Background(), &Env{}, "ping", nil)
	require.ErrorIs(t, err, boom)
	require.NotNil(t, rep)
	assert.False(t, rep.OK())
	assert.Equal(t, []string{"error: boom"}, rep.Lines())
}

func TestRegistry_Run_PassesParams(t *testing.T) {
	t.Parallel()

	var got Params
	r := NewRegistry().Register(Demo{Name: "echo", Run: func(_ context.Context, _ *Env, p Params, _ *Report) error {
		got = p
		return nil
	}})

	_, err := r.Run(context.Background(), &Env{}, "echo", Params{"subject": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Get("subject"))
	assert.Equal(t, "fallback", got.GetDefault("missing", "fallback"))
}

func TestCatalog_ContainsEveryDemo(t *testing.T) {
	t.Parallel()

	r := Catalog()
	names := make([]string, 0)
	for _, d := range r.List() {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Title, "demo %s needs a title", d.Name)
		assert.NotEmpty(t, d.Summary, "demo %s needs a summary", d.Name)
	}

	assert.Equal(t, []string{
		"plain-send",
		"full-options",
		"attachments",
		"merge-vars",
		"scheduled",
		"store-template",
		"send-template",
		"render-template",
		"template-info",
		"delete-template",
		"ping",
	}, names)
}
