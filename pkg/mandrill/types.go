package mandrill

// Recipient roles accepted by the API.
const (
	RecipientTo  = "to"
	RecipientCC  = "cc"
	RecipientBCC = "bcc"
)

// Per-recipient delivery statuses returned by send calls.
const (
	StatusSent      = "sent"
	StatusQueued    = "queued"
	StatusScheduled = "scheduled"
	StatusRejected  = "rejected"
	StatusInvalid   = "invalid"
)

// To addresses a single recipient. Type is one of the recipient role
// constants; the API treats an empty type as "to".
type To struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Var is a single merge variable. Content may be any JSON-encodable value.
type Var struct {
	Name    string `json:"name"`
	Content any    `json:"content"`
}

// RcptMergeVars binds merge variables to one recipient address.
type RcptMergeVars struct {
	Rcpt string `json:"rcpt"`
	Vars []Var  `json:"vars"`
}

// Attachment is a file rider with base64-encoded content. The same shape
// serves the images list, where Name becomes the CID for inline references.
type Attachment struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Message is the wire form of an outgoing message. Optional fields marshal
// only when set, so absent values omit the corresponding API field.
type Message struct {
	HTML               string            `json:"html,omitempty"`
	Text               string            `json:"text,omitempty"`
	Subject            string            `json:"subject,omitempty"`
	FromEmail          string            `json:"from_email,omitempty"`
	FromName           string            `json:"from_name,omitempty"`
	To                 []To              `json:"to"`
	Headers            map[string]string `json:"headers,omitempty"`
	Important          bool              `json:"important,omitempty"`
	TrackOpens         *bool             `json:"track_opens,omitempty"`
	TrackClicks        *bool             `json:"track_clicks,omitempty"`
	AutoText           bool              `json:"auto_text,omitempty"`
	InlineCSS          bool              `json:"inline_css,omitempty"`
	PreserveRecipients *bool             `json:"preserve_recipients,omitempty"`
	Merge              bool              `json:"merge,omitempty"`
	MergeLanguage      string            `json:"merge_language,omitempty"`
	GlobalMergeVars    []Var             `json:"global_merge_vars,omitempty"`
	MergeVars          []RcptMergeVars   `json:"merge_vars,omitempty"`
	Tags               []string          `json:"tags,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	Attachments        []Attachment      `json:"attachments,omitempty"`
	Images             []Attachment      `json:"images,omitempty"`
}

// SendResult is the per-recipient outcome of a send call.
type SendResult struct {
	Email        string `json:"email"`
	Status       string `json:"status"`
	RejectReason string `json:"reject_reason,omitempty"`
	ID           string `json:"_id"`
}
