package mandrill

import "context"

// Template is a template definition to store in the vendor account.
// Code is the HTML body and may contain named mc:edit editable regions.
type Template struct {
	Name      string   `json:"name"`
	FromEmail string   `json:"from_email,omitempty"`
	FromName  string   `json:"from_name,omitempty"`
	Subject   string   `json:"subject,omitempty"`
	Code      string   `json:"code,omitempty"`
	Text      string   `json:"text,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Publish   bool     `json:"publish"`
}

// TemplateInfo is the vendor's record of a stored template. Draft fields
// reflect the latest saved content; publish_* fields hold the published
// revision.
type TemplateInfo struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Labels           []string `json:"labels"`
	Code             string   `json:"code"`
	Subject          string   `json:"subject"`
	FromEmail        string   `json:"from_email"`
	FromName         string   `json:"from_name"`
	Text             string   `json:"text"`
	PublishName      string   `json:"publish_name"`
	PublishCode      string   `json:"publish_code"`
	PublishSubject   string   `json:"publish_subject"`
	PublishFromEmail string   `json:"publish_from_email"`
	PublishFromName  string   `json:"publish_from_name"`
	PublishText      string   `json:"publish_text"`
	PublishedAt      string   `json:"published_at"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

type templatePayload struct {
	Key string `json:"key"`
	Template
}

// AddTemplate stores a new template through templates/add.
// The API rejects names that already exist in the account.
func (c *Client) AddTemplate(ctx context.Context, tpl *Template) (*TemplateInfo, error) {
	payload := &templatePayload{Key: c.apiKey, Template: *tpl}
	info := &TemplateInfo{}
	if err := c.call(ctx, "templates/add", payload, info); err != nil {
		return nil, err
	}
	return info, nil
}

// UpdateTemplate replaces the content of an existing template through
// templates/update.
func (c *Client) UpdateTemplate(ctx context.Context, tpl *Template) (*TemplateInfo, error) {
	payload := &templatePayload{Key: c.apiKey, Template: *tpl}
	info := &TemplateInfo{}
	if err := c.call(ctx, "templates/update", payload, info); err != nil {
		return nil, err
	}
	return info, nil
}

type templateNamePayload struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// GetTemplate fetches a stored template's record through templates/info.
func (c *Client) GetTemplate(ctx context.Context, name string) (*TemplateInfo, error) {
	info := &TemplateInfo{}
	if err := c.call(ctx, "templates/info", &templateNamePayload{Key: c.apiKey, Name: name}, info); err != nil {
		return nil, err
	}
	return info, nil
}

// DeleteTemplate removes a stored template through templates/delete and
// returns its last record.
func (c *Client) DeleteTemplate(ctx context.Context, name string) (*TemplateInfo, error) {
	info := &TemplateInfo{}
	if err := c.call(ctx, "templates/delete", &templateNamePayload{Key: c.apiKey, Name: name}, info); err != nil {
		return nil, err
	}
	return info, nil
}

type templateListPayload struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
}

// ListTemplates returns the templates stored in the account, optionally
// filtered by label.
func (c *Client) ListTemplates(ctx context.Context, label string) ([]TemplateInfo, error) {
	var infos []TemplateInfo
	if err := c.call(ctx, "templates/list", &templateListPayload{Key: c.apiKey, Label: label}, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// RenderRequest asks the vendor to render a stored template server-side.
type RenderRequest struct {
	TemplateName    string
	TemplateContent []TemplateContent
	MergeVars       []Var
}

type renderPayload struct {
	Key             string            `json:"key"`
	TemplateName    string            `json:"template_name"`
	TemplateContent []TemplateContent `json:"template_content"`
	MergeVars       []Var             `json:"merge_vars,omitempty"`
}

type renderResult struct {
	HTML string `json:"html"`
}

// RenderTemplate renders a stored template with the given region overrides
// and merge variables through templates/render, returning the final HTML.
func (c *Client) RenderTemplate(ctx context.Context, req *RenderRequest) (string, error) {
	content := req.TemplateContent
	if content == nil {
		content = []TemplateContent{}
	}

	payload := &renderPayload{
		Key:             c.apiKey,
		TemplateName:    req.TemplateName,
		TemplateContent: content,
		MergeVars:       req.MergeVars,
	}

	var res renderResult
	if err := c.call(ctx, "templates/render", payload, &res); err != nil {
		return "", err
	}
	return res.HTML, nil
}
