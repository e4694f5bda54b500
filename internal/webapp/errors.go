package webapp

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPError carries an HTTP status alongside a user-facing message. The
// wrapped error, if any, is for logs and never shown to users.
type HTTPError struct {
	// Err is the underlying cause, for logging.
	Err error
	// Message is the user-facing error text.
	Message string
	// Code is the HTTP status code.
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// StatusText returns the standard text for the status code.
func (e *HTTPError) StatusText() string {
	return http.StatusText(e.Code)
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// ErrBadRequest builds a 400 error.
func ErrBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// ErrNotFound builds a 404 error.
func ErrNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

// ErrTooManyRequests builds a 429 error.
func ErrTooManyRequests(message string) *HTTPError {
	return NewHTTPError(http.StatusTooManyRequests, message)
}

// ErrInternal builds a 500 error.
func ErrInternal(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// AsHTTPError extracts an HTTPError from err, or nil when none is present.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

// PanicError is what the Recover middleware returns for a recovered panic.
type PanicError struct {
	// Value is the recovered panic value.
	Value any
	// Stack is the captured stack trace, nil when capture is disabled.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// TimeoutError is what the Timeout middleware returns when a handler
// overruns its deadline.
type TimeoutError struct {
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timeout after %s", e.Duration)
}
