package mailer

import (
	"fmt"
	"time"
)

// RecipientType is the delivery role of a recipient.
type RecipientType string

// Delivery roles.
const (
	RecipientTo  RecipientType = "to"
	RecipientCC  RecipientType = "cc"
	RecipientBCC RecipientType = "bcc"
)

// Address is a sender or recipient identity.
type Address struct {
	Email string
	Name  string
}

// String formats the address in RFC 5322 form.
// Returns "Name <email>" if a name is set, otherwise just the email.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Recipient is an addressed party with a delivery role.
// An empty Type is treated as "to".
type Recipient struct {
	Address
	Type RecipientType
}

// Attachment is a file rider with raw content. A set ContentID marks it as
// an inline image referenced from the HTML body via cid.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string
	Content     []byte
}

// Message is a fully-prepared outgoing message. It is constructed fresh for
// every send attempt and carries no identity of its own; the provider owns
// any durable record of the delivery.
type Message struct {
	From            Address
	ReplyTo         string
	Recipients      []Recipient
	Subject         string
	HTML            string
	Text            string
	Headers         map[string]string
	Tags            []string
	Metadata        map[string]string
	GlobalMergeVars map[string]any
	MergeVars       map[string]map[string]any // keyed by recipient email
	TrackOpens      *bool
	TrackClicks     *bool
	Important       bool
	SendAt          time.Time
	Attachments     []Attachment
	Images          []Attachment
}

// Validate checks the invariants every message must satisfy before any
// network call: at least one recipient and a sender email.
func (m *Message) Validate() error {
	if len(m.Recipients) == 0 {
		return ErrNoRecipient
	}
	if m.From.Email == "" {
		return ErrNoSender
	}
	return nil
}

// AddTo appends a primary recipient.
func (m *Message) AddTo(email, name string) *Message {
	m.Recipients = append(m.Recipients, Recipient{Address: Address{Email: email, Name: name}, Type: RecipientTo})
	return m
}

// AddCC appends a carbon-copy recipient.
func (m *Message) AddCC(email, name string) *Message {
	m.Recipients = append(m.Recipients, Recipient{Address: Address{Email: email, Name: name}, Type: RecipientCC})
	return m
}

// AddBCC appends a blind carbon-copy recipient.
func (m *Message) AddBCC(email, name string) *Message {
	m.Recipients = append(m.Recipients, Recipient{Address: Address{Email: email, Name: name}, Type: RecipientBCC})
	return m
}

// AddAttachment appends a file attachment.
func (m *Message) AddAttachment(a Attachment) *Message {
	m.Attachments = append(m.Attachments, a)
	return m
}

// AddImage appends an inline image addressable from the HTML body as
// cid:ContentID.
func (m *Message) AddImage(a Attachment) *Message {
	m.Images = append(m.Images, a)
	return m
}

// SetGlobalMergeVar sets a merge variable applied to all recipients.
func (m *Message) SetGlobalMergeVar(name string, content any) *Message {
	if m.GlobalMergeVars == nil {
		m.GlobalMergeVars = make(map[string]any)
	}
	m.GlobalMergeVars[name] = content
	return m
}

// SetMergeVars sets merge variables for a single recipient address,
// replacing any previous set for that address.
func (m *Message) SetMergeVars(rcpt string, vars map[string]any) *Message {
	if m.MergeVars == nil {
		m.MergeVars = make(map[string]map[string]any)
	}
	m.MergeVars[rcpt] = vars
	return m
}
