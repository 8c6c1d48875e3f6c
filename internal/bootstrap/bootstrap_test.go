package bootstrap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/internal/bootstrap"
	"github.com/shashiranjanraj/tasker/pkg/reqid"
	"github.com/shashiranjanraj/tasker/pkg/testkit"
)

func testConfig(t *testing.T, extra ...string) *config.Config {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	environ := append([]string{
		"DB_DRIVER=sqlite",
		"DATABASE_DSN=file:" + name + "?mode=memory&cache=shared",
		"DB_AUTO_MIGRATE=true",
		"CACHE_DRIVER=memory",
		"STATIC_DIR=testdata/dist",
	}, extra...)

	cfg, err := config.LoadFrom(config.Options{Environ: environ})
	require.NoError(t, err)
	return cfg
}

func TestAPIScenarios(t *testing.T) {
	application, closer, err := bootstrap.New(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	testkit.RunDir(t, application.Handler(), "testdata")
}

func TestRequestIDEchoed(t *testing.T) {
	application, closer, err := bootstrap.New(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(reqid.Header, "trace-123")
	application.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(reqid.Header))
}

func TestRouteTable(t *testing.T) {
	application, closer, err := bootstrap.New(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	var got []string
	for _, r := range application.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}
	assert.Equal(t, []string{
		"GET /api/metrics",
		"GET /api/ping",
		"GET /api/tasks",
		"POST /api/tasks",
		"DELETE /api/tasks/{id}",
		"GET /api/tasks/{id}",
		"PUT /api/tasks/{id}",
	}, got)
}

func TestUnreachableDatabase(t *testing.T) {
	cfg := testConfig(t, "DB_DRIVER=postgres", "DATABASE_DSN=host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1")

	_, closer, err := bootstrap.New(context.Background(), cfg)
	assert.Error(t, err)
	assert.NoError(t, closer())
}
