package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendbox/pkg/health"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)

	health.LivenessHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("healthy when all checks pass", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{
			"vendor": func(ctx context.Context) error { return nil },
			"redis":  func(ctx context.Context) error { return nil },
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

		health.ReadinessHandler(checks)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "OK", rec.Body.String())
	})

	t.Run("unhealthy when any check fails", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{
			"vendor": func(ctx context.Context) error { return nil },
			"redis":  func(ctx context.Context) error { return errors.New("connection refused") },
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

		health.ReadinessHandler(checks)(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("json format reports per-check status", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{
			"vendor": func(ctx context.Context) error { return errors.New("invalid key") },
			"redis":  func(ctx context.Context) error { return nil },
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil)

		health.ReadinessHandler(checks)(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, health.StatusUnhealthy, resp.Checks["vendor"].Status)
		require.Equal(t, "invalid key", resp.Checks["vendor"].Error)
		require.Equal(t, health.StatusHealthy, resp.Checks["redis"].Status)
	})

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

		health.ReadinessHandler(nil)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("hanging check fails once the timeout lapses", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

		health.ReadinessHandler(checks, health.WithTimeout(20*time.Millisecond))(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
