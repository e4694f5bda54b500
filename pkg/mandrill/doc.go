// Package mandrill implements a client for the Mandrill (Mailchimp
// Transactional) JSON API.
//
// Every API call is a single HTTP POST of a JSON document to
// {base}/{path}.json with the API key embedded in the request body, per the
// vendor contract. The client performs exactly one call per method
// invocation: no retries, no backoff, no batching. Failures are terminal
// for that invocation.
//
// # Operations
//
// Message delivery:
//
//   - SendMessage: messages/send, returns one SendResult per recipient
//   - SendTemplate: messages/send-template with mc:edit region overrides
//
// Template management:
//
//   - AddTemplate, UpdateTemplate, GetTemplate, ListTemplates,
//     DeleteTemplate: templates/add|update|info|list|delete
//   - RenderTemplate: templates/render, server-side preview
//
// Connectivity:
//
//   - Ping: users/ping, answers the literal "PONG!"
//
// # Usage
//
//	client, err := mandrill.New(mandrill.Config{APIKey: os.Getenv("MANDRILL_KEY")})
//	if err != nil {
//		return err
//	}
//
//	results, err := client.SendMessage(ctx, &mandrill.SendRequest{
//		Message: &mandrill.Message{
//			Subject:   "Hello",
//			HTML:      "<p>Hi there</p>",
//			FromEmail: "sender@example.com",
//			To:        []mandrill.To{{Email: "recipient@example.com"}},
//		},
//	})
//
// # Errors
//
// API-level failures (invalid key, unknown template, rejected payloads)
// arrive as a JSON error document and are returned as *APIError carrying
// the vendor's message text verbatim. Transport and decoding failures wrap
// ErrRequestFailed and ErrDecodeFailed. A client cannot be constructed
// without an API key; New returns ErrMissingAPIKey before any network
// activity is possible.
package mandrill
