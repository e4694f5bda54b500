package webapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Context is what a handler receives instead of the raw writer/request
// pair. It satisfies context.Context by delegating to the request context,
// so handlers can hand it straight to the demo registry and the vendor
// client without unwrapping.
type Context interface {
	context.Context

	// Request exposes the underlying *http.Request.
	Request() *http.Request

	// Response exposes the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// Context exposes the context carried by the request.
	Context() context.Context

	// Param reads a URL path parameter, or "" when absent.
	Param(name string) string

	// Query reads a query string parameter, or "" when absent.
	Query(name string) string

	// Form reads a form field, parsing the body on first use.
	Form(name string) string

	// Header reads a request header.
	Header(name string) string

	// SetHeader sets a header on the pending response.
	SetHeader(name, value string)

	// RequestID returns the tracking ID assigned by the RequestID
	// middleware, or "" when that middleware is not installed.
	RequestID() string

	// HTML renders the named template into the response with the given
	// status. The template runs against a buffer first, so a failed
	// execution never leaves a half-written page behind.
	HTML(code int, tmpl *template.Template, name string, data any) error

	// JSON writes v as a JSON response with the given status.
	JSON(code int, v any) error

	// String writes a plain text response with the given status.
	String(code int, s string) error

	// NoContent writes only the status line.
	NoContent(code int) error

	// Redirect sends the client to url with the given status.
	Redirect(code int, url string) error

	// Error builds an HTTPError without writing anything. Return it from
	// the handler to route it through the error handler.
	Error(code int, message string) *HTTPError

	// Written reports whether a response has gone out already.
	Written() bool

	// Logger returns the request logger.
	Logger() *slog.Logger

	// LogDebug logs at debug level with optional attributes.
	LogDebug(msg string, attrs ...any)

	// LogInfo logs at info level with optional attributes.
	LogInfo(msg string, attrs ...any)

	// LogWarn logs at warn level with optional attributes.
	LogWarn(msg string, attrs ...any)

	// LogError logs at error level with optional attributes.
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context. Get and
	// c.Context().Value(key) both see it.
	Set(key, value any)

	// Get reads a value from the request context, or nil.
	Get(key any) any

	// ResponseWriter returns the wrapped writer so middleware can inspect
	// the status and byte count after the handler ran.
	ResponseWriter() *ResponseWriter
}

type httpContext struct {
	req *http.Request
	res http.ResponseWriter
	rw  *ResponseWriter
	log *slog.Logger
}

func newContext(w http.ResponseWriter, r *http.Request, log *slog.Logger) *httpContext {
	rw := NewResponseWriter(w)
	return &httpContext{req: r, res: rw, rw: rw, log: log}
}

func (c *httpContext) Request() *http.Request {
	return c.req
}

func (c *httpContext) Response() http.ResponseWriter {
	return c.res
}

func (c *httpContext) Context() context.Context {
	return c.req.Context()
}

// Deadline, Done, Err, and Value make httpContext a context.Context.

func (c *httpContext) Deadline() (time.Time, bool) {
	return c.req.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.req.Context().Done()
}

func (c *httpContext) Err() error {
	return c.req.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.req.Context().Value(key)
}

func (c *httpContext) Param(name string) string {
	return chi.URLParam(c.req, name)
}

func (c *httpContext) Query(name string) string {
	return c.req.URL.Query().Get(name)
}

func (c *httpContext) Form(name string) string {
	return c.req.FormValue(name)
}

func (c *httpContext) Header(name string) string {
	return c.req.Header.Get(name)
}

func (c *httpContext) SetHeader(name, value string) {
	c.res.Header().Set(name, value)
}

func (c *httpContext) RequestID() string {
	return RequestIDFromContext(c.req.Context())
}

func (c *httpContext) HTML(code int, tmpl *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	c.res.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.res.WriteHeader(code)
	_, err := c.res.Write(buf.Bytes())
	return err
}

func (c *httpContext) JSON(code int, v any) error {
	c.res.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.res.WriteHeader(code)
	return json.NewEncoder(c.res).Encode(v)
}

func (c *httpContext) String(code int, s string) error {
	c.res.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.res.WriteHeader(code)
	_, err := c.res.Write([]byte(s))
	return err
}

func (c *httpContext) NoContent(code int) error {
	c.res.WriteHeader(code)
	return nil
}

func (c *httpContext) Redirect(code int, url string) error {
	http.Redirect(c.res, c.req, url, code)
	return nil
}

func (c *httpContext) Error(code int, message string) *HTTPError {
	return NewHTTPError(code, message)
}

func (c *httpContext) Written() bool {
	return c.rw.Written()
}

func (c *httpContext) Logger() *slog.Logger {
	return c.log
}

func (c *httpContext) LogDebug(msg string, attrs ...any) {
	c.log.DebugContext(c.req.Context(), msg, attrs...)
}

func (c *httpContext) LogInfo(msg string, attrs ...any) {
	c.log.InfoContext(c.req.Context(), msg, attrs...)
}

func (c *httpContext) LogWarn(msg string, attrs ...any) {
	c.log.WarnContext(c.req.Context(), msg, attrs...)
}

func (c *httpContext) LogError(msg string, attrs ...any) {
	c.log.ErrorContext(c.req.Context(), msg, attrs...)
}

func (c *httpContext) Set(key, value any) {
	c.req = c.req.WithContext(context.WithValue(c.req.Context(), key, value))
}

func (c *httpContext) Get(key any) any {
	return c.req.Context().Value(key)
}

func (c *httpContext) ResponseWriter() *ResponseWriter {
	return c.rw
}
