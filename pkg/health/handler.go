package health

import (
	"encoding/json"
	"net/http"
	"strings"
)

// LivenessHandler reports that the process is up. Wire it to the liveness
// probe; it never consults any checks.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, Response{Status: StatusHealthy})
	}
}

// ReadinessHandler runs every check on each request and answers 200 when
// all pass, 503 otherwise. Clients get plain text unless they ask for JSON
// through the Accept header or ?format=json.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	s := newSettings(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		resp := evaluate(r.Context(), checks, s)

		code := http.StatusOK
		if resp.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}

		respond(w, r, code, resp)
	}
}

func respond(w http.ResponseWriter, r *http.Request, code int, resp Response) {
	if acceptsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.WriteHeader(code)
	if code == http.StatusOK {
		_, _ = w.Write([]byte("OK"))
	} else {
		_, _ = w.Write([]byte("Service Unavailable"))
	}
}

// acceptsJSON honors the query parameter first so a probe URL can force
// the format without header control.
func acceptsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
