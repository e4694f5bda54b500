package mandrill

import "errors"

var (
	// ErrMissingAPIKey indicates the client was constructed without an API key.
	ErrMissingAPIKey = errors.New("mandrill API key is required")

	// ErrRequestFailed indicates the HTTP request could not be completed.
	ErrRequestFailed = errors.New("mandrill request failed")

	// ErrDecodeFailed indicates the API response could not be decoded.
	ErrDecodeFailed = errors.New("failed to decode mandrill response")

	// ErrMessageTooLarge indicates the serialized request exceeds the
	// documented 25 MB message ceiling.
	ErrMessageTooLarge = errors.New("message exceeds the 25 MB limit")

	// ErrHealthcheckFailed indicates the API ping failed.
	ErrHealthcheckFailed = errors.New("mandrill: healthcheck failed")
)

// APIError is the structured error document returned by the Mandrill API.
type APIError struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Error returns the vendor's message text verbatim.
func (e *APIError) Error() string { return e.Message }

// Error names the API uses for common failure classes.
const (
	errNameInvalidKey      = "Invalid_Key"
	errNameUnknownTemplate = "Unknown_Template"
)

// IsInvalidKey reports whether err is a vendor authentication failure.
func IsInvalidKey(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Name == errNameInvalidKey
}

// IsUnknownTemplate reports whether err refers to a template that does not
// exist in the vendor account.
func IsUnknownTemplate(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Name == errNameUnknownTemplate
}
