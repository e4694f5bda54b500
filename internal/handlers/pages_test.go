package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendbox/internal/demo"
	"github.com/dmitrymomot/sendbox/internal/handlers"
	"github.com/dmitrymomot/sendbox/internal/webapp"
	"github.com/dmitrymomot/sendbox/pkg/cache"
	"github.com/dmitrymomot/sendbox/pkg/mailer"
	mandrillmail "github.com/dmitrymomot/sendbox/pkg/mailer/mandrill"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

// newHarness wires the full web app against a fake vendor and returns the
// app's test server. runRPM caps POST /run; zero disables the limit.
func newHarness(t *testing.T, vendor http.HandlerFunc, runRPM int) *httptest.Server {
	t.Helper()

	vendorSrv := httptest.NewServer(vendor)
	t.Cleanup(vendorSrv.Close)

	client, err := mandrill.New(mandrill.Config{APIKey: "test-key", BaseURL: vendorSrv.URL})
	require.NoError(t, err)

	mem := cache.NewMemory[[]mandrill.TemplateInfo]()
	t.Cleanup(func() { _ = mem.Close() })

	builder := mailer.NewBuilder(mailer.Defaults{
		FromEmail:      "sender@test.dev",
		FromName:       "Test Sender",
		RecipientEmail: "pat@test.dev",
		RecipientName:  "Pat",
	}, nil)

	env := &demo.Env{
		Builder:  builder,
		Sender:   mandrillmail.New(client),
		Client:   client,
		Composer: demo.NewComposer(mailer.Config{}),
		Listing:  demo.NewListing(client, mem, time.Minute),
	}

	app := webapp.New(
		webapp.WithHandlers(handlers.NewPages(demo.Catalog(), env, runRPM)),
		webapp.WithErrorHandler(handlers.ErrorPage()),
		webapp.WithNotFoundHandler(handlers.NotFound()),
	)
	srv := httptest.NewServer(app.Router())
	t.Cleanup(srv.Close)
	return srv
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return string(body)
}

func postRun(t *testing.T, srv *httptest.Server, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := http.PostForm(srv.URL+"/run", form)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func TestPages_Index(t *testing.T) {
	t.Parallel()

	srv := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/templates/list.json", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]mandrill.TemplateInfo{
			{Name: "sendbox-demo", Slug: "sendbox-demo", PublishedAt: "2026-03-01 10:00:00", UpdatedAt: "2026-03-01 10:00:00"},
			{Name: "draft-only", Slug: "draft-only", UpdatedAt: "2026-02-01 09:00:00"},
		})
	}, 0)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	// Demo selector covers the whole catalog.
	assert.Contains(t, body, `<option value="plain-send">Plain send</option>`)
	assert.Contains(t, body, `<option value="ping">Ping</option>`)

	// Parameter inputs are namespaced per demo.
	assert.Contains(t, body, `name="param.plain-send.subject"`)
	assert.Contains(t, body, `name="param.merge-vars.first_name"`)

	// Vendor template catalog with publish state.
	assert.Contains(t, body, "sendbox-demo")
	assert.Contains(t, body, "published")
	assert.Contains(t, body, "draft-only")
	assert.Contains(t, body, "draft")
}

func TestPages_Index_ListingUnavailable(t *testing.T) {
	t.Parallel()

	srv := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(&mandrill.APIError{
			Status: "error", Code: -1, Name: "Invalid_Key", Message: "Invalid API key",
		})
	}, 0)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)

	// The form still works without the vendor; only the catalog degrades.
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<option value="plain-send">`)
	assert.Contains(t, body, "Stored templates are unavailable right now.")
}

func TestPages_Run_RendersReport(t *testing.T) {
	t.Parallel()

	var gotSubject string
	srv := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/messages/send.json", r.URL.Path)
		var payload struct {
			Message *mandrill.Message `json:"message"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotSubject = payload.Message.Subject
		results := make([]mandrill.SendResult, len(payload.Message.To))
		for i, to := range payload.Message.To {
			results[i] = mandrill.SendResult{Email: to.Email, Status: "sent", ID: "msg-1"}
		}
		_ = json.NewEncoder(w).Encode(results)
	}, 0)

	resp, body := postRun(t, srv, url.Values{
		"demo":                     {"plain-send"},
		"param.plain-send.subject": {"Override from the form"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Override from the form", gotSubject)
	assert.Contains(t, body, "Plain send")
	assert.Contains(t, body, `class="badge ok"`)
	assert.Contains(t, body, "pat@test.dev: sent")
	assert.Contains(t, body, "Run another demo")
}

func TestPages_Run_FailedRunStillGetsReportPage(t *testing.T) {
	t.Parallel()

	srv := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(&mandrill.APIError{
			Status: "error", Code: -1, Name: "Invalid_Key", Message: "Invalid API key",
		})
	}, 0)

	resp, body := postRun(t, srv, url.Values{"demo": {"ping"}})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `class="badge failed"`)
	// The vendor's message text lands on the page verbatim.
	assert.Contains(t, body, "Invalid API key")
}

func TestPages_Run_UnknownDemo(t *testing.T) {
	t.Parallel()

	var vendorCalls atomic.Int32
	srv := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		vendorCalls.Add(1)
	}, 0)

	resp, body := postRun(t, srv, url.Values{"demo": {"nope"}})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "There is no demo named")
	assert.Contains(t, body, "nope")
	require.Zero(t, vendorCalls.Load(), "unknown demo must not reach the vendor")
}

func TestPages_Run_MissingDemoField(t *testing.T) {
	t.Parallel()

	srv := newHarness(t, func(w http.ResponseWriter, r *http.Request) {}, 0)

	resp, body := postRun(t, srv, url.Values{})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Pick a demo to run.")
}

func TestPages_Run_PreviewIsSanitized(t *testing.T) {
	t.Parallel()

	srv := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/templates/render.json", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"html": `<h1>Rendered</h1><script>alert("xss")</script><p>Body</p>`,
		})
	}, 0)

	resp, body := postRun(t, srv, url.Values{"demo": {"render-template"}})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Rendered preview")
	assert.Contains(t, body, "<h1>Rendered</h1>")
	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "alert(")
}

func TestPages_Run_RateLimited(t *testing.T) {
	t.Parallel()

	srv := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode("PONG!")
	}, 2)

	for range 2 {
		resp, _ := postRun(t, srv, url.Values{"demo": {"ping"}})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := postRun(t, srv, url.Values{"demo": {"ping"}})
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, body, "Too Many Requests")

	// The form page is not limited.
	getResp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	readBody(t, getResp)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
}

func TestPages_NotFound(t *testing.T) {
	t.Parallel()

	srv := newHarness(t, func(w http.ResponseWriter, r *http.Request) {}, 0)

	resp, err := http.Get(srv.URL + "/missing")
	require.NoError(t, err)
	body := readBody(t, resp)

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "This page does not exist.")
}
