package mailer

import "errors"

// Sentinel errors for message validation, rendering, and delivery. Wrapped
// errors carry the detail; match these with errors.Is.
var (
	// ErrNoRecipient means the message has no To, CC, or BCC entry.
	ErrNoRecipient = errors.New("mailer: message has no recipient")

	// ErrNoSender means the message has no From address.
	ErrNoSender = errors.New("mailer: message has no sender")

	// ErrNoContent means the message carries neither a subject nor a body.
	ErrNoContent = errors.New("mailer: message has no subject or body")

	// ErrContentNotFound means no content file exists under the configured
	// directory.
	ErrContentNotFound = errors.New("mailer: content not found")

	// ErrLayoutNotFound means no layout file exists under the configured
	// directory.
	ErrLayoutNotFound = errors.New("mailer: layout not found")

	// ErrRenderFailed means template execution or markdown conversion failed.
	ErrRenderFailed = errors.New("mailer: render failed")

	// ErrSendFailed means the provider rejected or could not take the message.
	ErrSendFailed = errors.New("mailer: send failed")

	// ErrInvalidFrontmatter means the frontmatter block is malformed.
	ErrInvalidFrontmatter = errors.New("mailer: invalid frontmatter")

	// ErrAttachmentNotFound means the attachment path does not resolve to a
	// readable file.
	ErrAttachmentNotFound = errors.New("mailer: attachment file not found")
)
