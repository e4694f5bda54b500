package mailer

import "context"

// Result is the per-recipient outcome reported by the provider.
type Result struct {
	Email        string
	Status       string
	ID           string
	RejectReason string
}

// Sender is the delivery side of the package. A provider adapter takes a
// fully prepared Message and reports one Result per recipient, in recipient
// order.
type Sender interface {
	// Send delivers a message. Implementations validate the message before
	// any network activity and perform exactly one delivery attempt.
	Send(ctx context.Context, msg *Message) ([]Result, error)
}
