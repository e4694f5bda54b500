package mandrill

import (
	"context"
	"time"
)

// sendAtLayout is the UTC timestamp format accepted by the send_at field.
const sendAtLayout = "2006-01-02 15:04:05"

// SendRequest wraps messages/send parameters. A zero SendAt means immediate
// delivery; a future SendAt schedules the message vendor-side.
type SendRequest struct {
	Message *Message
	Async   bool
	IPPool  string
	SendAt  time.Time
}

type sendPayload struct {
	Key     string   `json:"key"`
	Message *Message `json:"message"`
	Async   bool     `json:"async"`
	IPPool  string   `json:"ip_pool,omitempty"`
	SendAt  string   `json:"send_at,omitempty"`
}

// SendMessage delivers a message through messages/send and returns one
// result per recipient, in recipient order.
func (c *Client) SendMessage(ctx context.Context, req *SendRequest) ([]SendResult, error) {
	payload := &sendPayload{
		Key:     c.apiKey,
		Message: req.Message,
		Async:   req.Async,
		IPPool:  req.IPPool,
	}
	if !req.SendAt.IsZero() {
		payload.SendAt = req.SendAt.UTC().Format(sendAtLayout)
	}

	var results []SendResult
	if err := c.call(ctx, "messages/send", payload, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// TemplateContent overrides a named mc:edit region at send time.
type TemplateContent struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SendTemplateRequest wraps messages/send-template parameters.
type SendTemplateRequest struct {
	TemplateName    string
	TemplateContent []TemplateContent
	Message         *Message
	Async           bool
	IPPool          string
	SendAt          time.Time
}

type sendTemplatePayload struct {
	Key             string            `json:"key"`
	TemplateName    string            `json:"template_name"`
	TemplateContent []TemplateContent `json:"template_content"`
	Message         *Message          `json:"message"`
	Async           bool              `json:"async"`
	IPPool          string            `json:"ip_pool,omitempty"`
	SendAt          string            `json:"send_at,omitempty"`
}

// SendTemplate delivers a message based on a stored template through
// messages/send-template. Region overrides and merge variables in the
// message apply during vendor-side rendering.
func (c *Client) SendTemplate(ctx context.Context, req *SendTemplateRequest) ([]SendResult, error) {
	content := req.TemplateContent
	if content == nil {
		// The API requires the field to be present, even when empty.
		content = []TemplateContent{}
	}

	payload := &sendTemplatePayload{
		Key:             c.apiKey,
		TemplateName:    req.TemplateName,
		TemplateContent: content,
		Message:         req.Message,
		Async:           req.Async,
		IPPool:          req.IPPool,
	}
	if !req.SendAt.IsZero() {
		payload.SendAt = req.SendAt.UTC().Format(sendAtLayout)
	}

	var results []SendResult
	if err := c.call(ctx, "messages/send-template", payload, &results); err != nil {
		return nil, err
	}
	return results, nil
}
