package mandrill_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendbox/pkg/mailer"
	mandrillmail "github.com/dmitrymomot/sendbox/pkg/mailer/mandrill"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

func newTestSender(t *testing.T, handler http.HandlerFunc) *mandrillmail.Sender {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := mandrill.New(mandrill.Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	return mandrillmail.New(client)
}

func decodeMessage(t *testing.T, r *http.Request) *mandrill.Message {
	t.Helper()

	var payload struct {
		Message *mandrill.Message `json:"message"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
	require.NotNil(t, payload.Message)
	return payload.Message
}

func TestSender_Send_NoRecipients(t *testing.T) {
	t.Parallel()

	sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid messages must be rejected before the network call")
	})

	msg := &mailer.Message{
		From:    mailer.Address{Email: "sender@example.com"},
		Subject: "No one to read this",
	}

	_, err := sender.Send(context.Background(), msg)
	require.ErrorIs(t, err, mailer.ErrNoRecipient)
}

func TestSender_Send_NoSender(t *testing.T) {
	t.Parallel()

	sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid messages must be rejected before the network call")
	})

	msg := (&mailer.Message{Subject: "Missing sender"}).AddTo("to@example.com", "")

	_, err := sender.Send(context.Background(), msg)
	require.ErrorIs(t, err, mailer.ErrNoSender)
}

func TestSender_Send_NoContent(t *testing.T) {
	t.Parallel()

	sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty messages must be rejected before the network call")
	})

	msg := (&mailer.Message{From: mailer.Address{Email: "sender@example.com"}}).
		AddTo("to@example.com", "")

	_, err := sender.Send(context.Background(), msg)
	require.ErrorIs(t, err, mailer.ErrNoContent)
}

func TestSender_Send_ConvertsMessage(t *testing.T) {
	t.Parallel()

	fileContent := []byte("%PDF-1.4 demo attachment bytes\x00\x01\x02")

	sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		msg := decodeMessage(t, r)

		assert.Equal(t, "sender@example.com", msg.FromEmail)
		assert.Equal(t, "Demo", msg.FromName)

		require.Len(t, msg.To, 3)
		assert.Equal(t, "to", msg.To[0].Type)
		assert.Equal(t, "cc", msg.To[1].Type)
		assert.Equal(t, "bcc", msg.To[2].Type)

		assert.Equal(t, "replies@example.com", msg.Headers["Reply-To"])
		assert.Equal(t, "sendbox", msg.Headers["X-Demo"])

		assert.True(t, msg.Merge)
		assert.Equal(t, "mailchimp", msg.MergeLanguage)
		require.Len(t, msg.GlobalMergeVars, 2)
		assert.Equal(t, "COMPANY", msg.GlobalMergeVars[0].Name)
		assert.Equal(t, "YEAR", msg.GlobalMergeVars[1].Name)

		// Per-recipient vars arrive in recipient order.
		require.Len(t, msg.MergeVars, 2)
		assert.Equal(t, "to@example.com", msg.MergeVars[0].Rcpt)
		assert.Equal(t, "cc@example.com", msg.MergeVars[1].Rcpt)

		// Attachment content must decode back to the original bytes.
		require.Len(t, msg.Attachments, 1)
		decoded, err := base64.StdEncoding.DecodeString(msg.Attachments[0].Content)
		require.NoError(t, err)
		assert.Equal(t, fileContent, decoded)
		assert.Equal(t, "application/pdf", msg.Attachments[0].Type)
		assert.Equal(t, "usage.pdf", msg.Attachments[0].Name)

		// Inline images are named by CID.
		require.Len(t, msg.Images, 1)
		assert.Equal(t, "logo", msg.Images[0].Name)

		_ = json.NewEncoder(w).Encode([]mandrill.SendResult{
			{Email: "to@example.com", Status: "sent", ID: "m-1"},
			{Email: "cc@example.com", Status: "sent", ID: "m-2"},
			{Email: "bcc@example.com", Status: "queued", ID: "m-3"},
		})
	})

	msg := &mailer.Message{
		From:    mailer.Address{Email: "sender@example.com", Name: "Demo"},
		ReplyTo: "replies@example.com",
		Subject: "Everything at once",
		HTML:    "<p>Hello *|NAME|*</p>",
		Headers: map[string]string{"X-Demo": "sendbox"},
	}
	msg.AddTo("to@example.com", "Primary").
		AddCC("cc@example.com", "").
		AddBCC("bcc@example.com", "").
		SetGlobalMergeVar("YEAR", 2026).
		SetGlobalMergeVar("COMPANY", "Acme").
		SetMergeVars("cc@example.com", map[string]any{"NAME": "Carol"}).
		SetMergeVars("to@example.com", map[string]any{"NAME": "Ann"}).
		AddAttachment(mailer.Attachment{
			Filename:    "usage.pdf",
			ContentType: "application/pdf",
			Content:     fileContent,
		}).
		AddImage(mailer.Attachment{
			Filename:    "logo.png",
			ContentType: "image/png",
			ContentID:   "logo",
			Content:     []byte{0x89, 0x50, 0x4e, 0x47},
		})

	results, err := sender.Send(context.Background(), msg)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, mailer.Result{Email: "to@example.com", Status: "sent", ID: "m-1"}, results[0])

	// The caller's header map must stay untouched.
	assert.NotContains(t, msg.Headers, "Reply-To")
}

func TestSender_Send_VendorError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "error", "code": -1, "name": "Invalid_Key", "message": "Invalid API key",
		})
	})

	msg := (&mailer.Message{
		From:    mailer.Address{Email: "sender@example.com"},
		Subject: "Hello",
	}).AddTo("to@example.com", "")

	_, err := sender.Send(context.Background(), msg)
	require.ErrorIs(t, err, mailer.ErrSendFailed)

	var apiErr *mandrill.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid API key", apiErr.Message)
	assert.Equal(t, int32(1), calls.Load(), "a failed send must not be retried")
}

func TestSender_SendWithTemplate(t *testing.T) {
	t.Parallel()

	sender := newTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/send-template.json", r.URL.Path)

		var payload struct {
			TemplateName    string                     `json:"template_name"`
			TemplateContent []mandrill.TemplateContent `json:"template_content"`
			Message         *mandrill.Message          `json:"message"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		assert.Equal(t, "demo-welcome", payload.TemplateName)
		require.Len(t, payload.TemplateContent, 2)
		assert.Equal(t, "footer", payload.TemplateContent[0].Name)
		assert.Equal(t, "main", payload.TemplateContent[1].Name)

		_ = json.NewEncoder(w).Encode([]mandrill.SendResult{
			{Email: "to@example.com", Status: "sent", ID: "m-9"},
		})
	})

	// No local bodies: the stored template supplies them.
	msg := (&mailer.Message{
		From: mailer.Address{Email: "sender@example.com"},
	}).AddTo("to@example.com", "Ann")

	results, err := sender.SendWithTemplate(context.Background(), "demo-welcome", map[string]string{
		"main":   "<p>Region content</p>",
		"footer": "<p>Bye</p>",
	}, msg)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "m-9", results[0].ID)
}
