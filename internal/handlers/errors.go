package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/sendbox/internal/views"
	"github.com/dmitrymomot/sendbox/internal/webapp"
)

// ErrorPage returns the application error handler. It renders error.html
// with the status an HTTPError carries, maps timeouts to 504, and keeps
// everything else a plain 500 so panic values and internal errors never
// reach the page.
func ErrorPage() webapp.ErrorHandler {
	return func(c webapp.Context, err error) error {
		code := http.StatusInternalServerError
		message := "Something went wrong while handling the request."

		if httpErr := webapp.AsHTTPError(err); httpErr != nil {
			code = httpErr.Code
			message = httpErr.Message
		}

		var timeoutErr *webapp.TimeoutError
		if errors.As(err, &timeoutErr) {
			code = http.StatusGatewayTimeout
			message = "The demo run took too long and was cancelled. The vendor may still process the send."
		}

		data := views.ErrorData{
			Code:      code,
			Status:    http.StatusText(code),
			Message:   message,
			RequestID: c.RequestID(),
		}
		return c.HTML(code, views.Pages(), "error.html", data)
	}
}

// NotFound is the handler for unmatched paths. It returns a 404 HTTPError
// so the response goes through the same error page as everything else.
func NotFound() webapp.HandlerFunc {
	return func(c webapp.Context) error {
		return webapp.ErrNotFound("This page does not exist.")
	}
}
