// Package mandrill adapts the Mandrill API client to the mailer.Sender
// interface: it converts the provider-agnostic Message into the vendor wire
// format, performs exactly one send call, and maps the per-recipient
// response back to mailer Results.
package mandrill
