package mandrill

import (
	"context"
	"encoding/base64"
	"errors"
	"maps"
	"slices"

	"github.com/dmitrymomot/sendbox/pkg/mailer"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

// Sender implements mailer.Sender using the Mandrill messages API.
type Sender struct {
	client *mandrill.Client
}

// New creates a Mandrill-backed sender around an existing API client.
func New(client *mandrill.Client) *Sender {
	return &Sender{client: client}
}

// Send implements mailer.Sender. The message is validated before any
// network activity; delivery is one messages/send call with no retry, and
// vendor error text passes through unmodified.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) ([]mailer.Result, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if msg.Subject == "" && msg.HTML == "" && msg.Text == "" {
		return nil, mailer.ErrNoContent
	}

	results, err := s.client.SendMessage(ctx, &mandrill.SendRequest{
		Message: convertMessage(msg),
		SendAt:  msg.SendAt,
	})
	if err != nil {
		return nil, errors.Join(mailer.ErrSendFailed, err)
	}
	return convertResults(results), nil
}

// SendWithTemplate delivers the message through a template stored in the
// vendor account. Region overrides map mc:edit names to replacement HTML.
// Subject, sender, and bodies fall back to the stored template when empty,
// so ErrNoContent does not apply here.
func (s *Sender) SendWithTemplate(ctx context.Context, templateName string, regions map[string]string, msg *mailer.Message) ([]mailer.Result, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	results, err := s.client.SendTemplate(ctx, &mandrill.SendTemplateRequest{
		TemplateName:    templateName,
		TemplateContent: convertRegions(regions),
		Message:         convertMessage(msg),
		SendAt:          msg.SendAt,
	})
	if err != nil {
		return nil, errors.Join(mailer.ErrSendFailed, err)
	}
	return convertResults(results), nil
}

func convertMessage(msg *mailer.Message) *mandrill.Message {
	out := &mandrill.Message{
		HTML:            msg.HTML,
		Text:            msg.Text,
		Subject:         msg.Subject,
		FromEmail:       msg.From.Email,
		FromName:        msg.From.Name,
		To:              convertRecipients(msg.Recipients),
		Headers:         convertHeaders(msg),
		Important:       msg.Important,
		TrackOpens:      msg.TrackOpens,
		TrackClicks:     msg.TrackClicks,
		Tags:            msg.Tags,
		Metadata:        msg.Metadata,
		GlobalMergeVars: convertVars(msg.GlobalMergeVars),
		MergeVars:       convertMergeVars(msg),
		Attachments:     convertAttachments(msg.Attachments),
		Images:          convertImages(msg.Images),
	}

	if len(out.GlobalMergeVars) > 0 || len(out.MergeVars) > 0 {
		out.Merge = true
		out.MergeLanguage = "mailchimp"
	}
	return out
}

func convertRecipients(rcpts []mailer.Recipient) []mandrill.To {
	out := make([]mandrill.To, len(rcpts))
	for i, r := range rcpts {
		role := r.Type
		if role == "" {
			role = mailer.RecipientTo
		}
		out[i] = mandrill.To{Email: r.Email, Name: r.Name, Type: string(role)}
	}
	return out
}

// convertHeaders copies the header map so Reply-To injection never mutates
// the caller's message. Mandrill carries reply-to as a header rather than a
// top-level field.
func convertHeaders(msg *mailer.Message) map[string]string {
	if len(msg.Headers) == 0 && msg.ReplyTo == "" {
		return nil
	}
	h := make(map[string]string, len(msg.Headers)+1)
	maps.Copy(h, msg.Headers)
	if msg.ReplyTo != "" {
		h["Reply-To"] = msg.ReplyTo
	}
	return h
}

// convertVars flattens a variable map into the wire list, sorted by name
// for a deterministic payload.
func convertVars(vars map[string]any) []mandrill.Var {
	if len(vars) == 0 {
		return nil
	}
	out := make([]mandrill.Var, 0, len(vars))
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		out = append(out, mandrill.Var{Name: name, Content: vars[name]})
	}
	return out
}

// convertMergeVars emits per-recipient variables in recipient order.
// Entries addressed outside the recipient list still go on the wire, sorted
// by address; the vendor ignores unmatched ones.
func convertMergeVars(msg *mailer.Message) []mandrill.RcptMergeVars {
	if len(msg.MergeVars) == 0 {
		return nil
	}

	out := make([]mandrill.RcptMergeVars, 0, len(msg.MergeVars))
	seen := make(map[string]bool, len(msg.MergeVars))
	for _, r := range msg.Recipients {
		vars, ok := msg.MergeVars[r.Email]
		if !ok || seen[r.Email] {
			continue
		}
		seen[r.Email] = true
		out = append(out, mandrill.RcptMergeVars{Rcpt: r.Email, Vars: convertVars(vars)})
	}
	for _, rcpt := range slices.Sorted(maps.Keys(msg.MergeVars)) {
		if !seen[rcpt] {
			out = append(out, mandrill.RcptMergeVars{Rcpt: rcpt, Vars: convertVars(msg.MergeVars[rcpt])})
		}
	}
	return out
}

func convertAttachments(attachments []mailer.Attachment) []mandrill.Attachment {
	if len(attachments) == 0 {
		return nil
	}
	out := make([]mandrill.Attachment, len(attachments))
	for i, a := range attachments {
		out[i] = mandrill.Attachment{
			Type:    a.ContentType,
			Name:    a.Filename,
			Content: base64.StdEncoding.EncodeToString(a.Content),
		}
	}
	return out
}

// convertImages uses the ContentID as the wire name, which is how the API
// binds an image to cid references in the HTML body.
func convertImages(images []mailer.Attachment) []mandrill.Attachment {
	if len(images) == 0 {
		return nil
	}
	out := make([]mandrill.Attachment, len(images))
	for i, img := range images {
		name := img.ContentID
		if name == "" {
			name = img.Filename
		}
		out[i] = mandrill.Attachment{
			Type:    img.ContentType,
			Name:    name,
			Content: base64.StdEncoding.EncodeToString(img.Content),
		}
	}
	return out
}

func convertRegions(regions map[string]string) []mandrill.TemplateContent {
	if len(regions) == 0 {
		return nil
	}
	out := make([]mandrill.TemplateContent, 0, len(regions))
	for _, name := range slices.Sorted(maps.Keys(regions)) {
		out = append(out, mandrill.TemplateContent{Name: name, Content: regions[name]})
	}
	return out
}

func convertResults(results []mandrill.SendResult) []mailer.Result {
	out := make([]mailer.Result, len(results))
	for i, r := range results {
		out[i] = mailer.Result{
			Email:        r.Email,
			Status:       r.Status,
			ID:           r.ID,
			RejectReason: r.RejectReason,
		}
	}
	return out
}
