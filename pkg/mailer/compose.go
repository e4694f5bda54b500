package mailer

// Composer renders markdown content into a prepared Message, resolving
// the layout and subject from configuration when the message and the
// content file leave them open.
type Composer struct {
	renderer *Renderer
	config   Config
}

// NewComposer wraps a renderer with content configuration. Zero config
// values fall back to "base.html" and "Notification", matching the env
// defaults.
func NewComposer(renderer *Renderer, cfg Config) *Composer {
	if cfg.DefaultLayout == "" {
		cfg.DefaultLayout = "base.html"
	}
	if cfg.FallbackSubject == "" {
		cfg.FallbackSubject = "Notification"
	}
	return &Composer{renderer: renderer, config: cfg}
}

// ComposeParams selects the content to render.
type ComposeParams struct {
	// Template is the content file name, e.g. "welcome.md".
	Template string
	// Layout overrides the configured default layout.
	Layout string
	// Data feeds the content body and the frontmatter subject templates.
	Data any
}

// Compose renders the content file into msg's HTML and text bodies.
// Subject resolution: a subject already on the message, then the content
// frontmatter, then the configured fallback.
func (c *Composer) Compose(msg *Message, p ComposeParams) (*RenderResult, error) {
	layout := p.Layout
	if layout == "" {
		layout = c.config.DefaultLayout
	}

	out, err := c.renderer.Render(layout, p.Template, p.Data)
	if err != nil {
		return nil, err
	}

	msg.HTML = out.HTML
	msg.Text = out.Text
	if msg.Subject == "" {
		msg.Subject = out.Subject
	}
	if msg.Subject == "" {
		msg.Subject = c.config.FallbackSubject
	}
	return out, nil
}
