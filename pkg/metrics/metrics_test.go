package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tasker/pkg/metrics"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())
	r.Get("/api/things/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/things/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/things/2", nil))

	body := scrape(t)
	assert.Contains(t, body, `tasker_http_requests_total{method="GET",path="/api/things/{id}",status="202"} 2`)
	assert.NotContains(t, body, `path="/api/things/1"`)
}

func TestMiddlewareUnmatched(t *testing.T) {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())
	r.Get("/api/ping", func(http.ResponseWriter, *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/some/client/route", nil))

	assert.Contains(t, scrape(t), `tasker_http_requests_total{method="DELETE",path="unmatched",status="404"} 1`)
}

func TestHandlerExposesMetrics(t *testing.T) {
	metrics.ObserveDBQuery("select", time.Now())
	metrics.CacheMiss("redis")
	metrics.CacheHit("redis")

	body := scrape(t)
	assert.Contains(t, body, "tasker_db_query_duration_seconds")
	assert.Contains(t, body, `tasker_cache_misses_total{driver="redis"}`)
	assert.Contains(t, body, `tasker_cache_hits_total{driver="redis"}`)
	assert.Contains(t, body, "go_goroutines")
}
