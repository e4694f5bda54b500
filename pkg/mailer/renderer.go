package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

// Renderer turns markdown content files with YAML frontmatter into HTML
// and plain-text message bodies. The text alternative is the processed
// markdown before HTML conversion, so merge tags survive into both bodies.
type Renderer struct {
	fsys fs.FS
	md   goldmark.Markdown

	contentDir string
	layoutDir  string

	// Parsed templates are cached; rendered output never is.
	mu       sync.RWMutex
	contents map[string]*parsedContent
	layouts  map[string]*template.Template
}

// parsedContent is a content file ready to execute against render data.
type parsedContent struct {
	meta map[string]any
	tmpl *texttemplate.Template
}

// RendererOption configures the renderer.
type RendererOption func(*Renderer)

// WithContentDir sets the directory content files are read from.
// Defaults to ".".
func WithContentDir(dir string) RendererOption {
	return func(r *Renderer) {
		if dir != "" {
			r.contentDir = dir
		}
	}
}

// WithLayoutDir sets the directory layout files are read from.
// Defaults to "layouts".
func WithLayoutDir(dir string) RendererOption {
	return func(r *Renderer) {
		if dir != "" {
			r.layoutDir = dir
		}
	}
}

// NewRenderer creates a renderer over the given filesystem.
func NewRenderer(fsys fs.FS, opts ...RendererOption) *Renderer {
	r := &Renderer{
		fsys:       fsys,
		md:         goldmark.New(goldmark.WithExtensions(Buttons())),
		contentDir: ".",
		layoutDir:  "layouts",
		contents:   make(map[string]*parsedContent),
		layouts:    make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderResult carries the rendered HTML page, the plain-text alternative,
// the subject resolved from frontmatter, and the raw metadata.
type RenderResult struct {
	Metadata map[string]any
	Subject  string
	HTML     string
	Text     string
}

// Render processes a markdown content file inside a layout. The content
// body and the frontmatter Subject both execute as text templates against
// data, so {{.Field}} references work in either.
func (r *Renderer) Render(layout, name string, data any) (*RenderResult, error) {
	c, err := r.content(name)
	if err != nil {
		return nil, err
	}

	var text bytes.Buffer
	if err := c.tmpl.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("%w: execute content %s: %v", ErrRenderFailed, name, err)
	}

	var body bytes.Buffer
	if err := r.md.Convert(text.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	lt, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	err = lt.Execute(&page, map[string]any{
		"Content":  template.HTML(body.String()),
		"Metadata": c.meta,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	subject, err := subjectFrom(c.meta, data)
	if err != nil {
		return nil, err
	}

	return &RenderResult{
		Metadata: c.meta,
		Subject:  subject,
		HTML:     page.String(),
		Text:     text.String(),
	}, nil
}

// subjectFrom executes the frontmatter Subject as a text template against
// data. Frontmatter without a Subject yields an empty string.
func subjectFrom(meta map[string]any, data any) (string, error) {
	raw, _ := meta["Subject"].(string)
	if raw == "" {
		return "", nil
	}

	tmpl, err := texttemplate.New("subject").Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: parse subject: %v", ErrRenderFailed, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: execute subject: %v", ErrRenderFailed, err)
	}
	return buf.String(), nil
}

func (r *Renderer) content(name string) (*parsedContent, error) {
	return memo(&r.mu, r.contents, name, func() (*parsedContent, error) {
		raw, err := fs.ReadFile(r.fsys, path.Join(r.contentDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrContentNotFound, name, err)
		}

		parsed, err := ParseContent(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
		}

		tmpl, err := texttemplate.New(name).Parse(parsed.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: parse content %s: %v", ErrRenderFailed, name, err)
		}

		return &parsedContent{meta: parsed.Meta, tmpl: tmpl}, nil
	})
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	return memo(&r.mu, r.layouts, name, func() (*template.Template, error) {
		raw, err := fs.ReadFile(r.fsys, path.Join(r.layoutDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
		}

		lt, err := template.New(name).Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
		}

		return lt, nil
	})
}

// memo returns the value cached under key, building and storing it on first
// use. The build runs under the write lock, so each key builds once.
func memo[T any](mu *sync.RWMutex, m map[string]T, key string, build func() (T, error)) (T, error) {
	mu.RLock()
	v, ok := m[key]
	mu.RUnlock()
	if ok {
		return v, nil
	}

	mu.Lock()
	defer mu.Unlock()
	if v, ok := m[key]; ok {
		return v, nil
	}

	v, err := build()
	if err != nil {
		var zero T
		return zero, err
	}
	m[key] = v
	return v, nil
}
