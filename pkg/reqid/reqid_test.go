package reqid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/tasker/pkg/reqid"
)

func serve(req *http.Request) (string, *httptest.ResponseRecorder) {
	var seen string
	h := reqid.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqid.FromCtx(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddlewareGeneratesID(t *testing.T) {
	seen, rec := serve(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, seen, 32)
	assert.Equal(t, seen, rec.Header().Get(reqid.Header))
}

func TestMiddlewareHonoursUpstreamID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(reqid.Header, "gateway-123")

	seen, rec := serve(req)

	assert.Equal(t, "gateway-123", seen)
	assert.Equal(t, "gateway-123", rec.Header().Get(reqid.Header))
}

func TestMiddlewareReplacesOversizeID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(reqid.Header, strings.Repeat("x", 500))

	seen, _ := serve(req)
	assert.Len(t, seen, 32)
}
