package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/tasker/pkg/logger"
	"github.com/shashiranjanraj/tasker/pkg/middleware"
	"github.com/shashiranjanraj/tasker/pkg/reqid"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger.L
	logger.L = logger.New(&buf, false)
	t.Cleanup(func() { logger.L = prev })
	return &buf
}

func TestLoggerWritesAccessLine(t *testing.T) {
	buf := captureLog(t)

	h := reqid.Middleware()(middleware.Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.WithCtx(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusCreated)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	req.Header.Set(reqid.Header, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `msg="inside handler" request_id=req-42`)
	assert.Contains(t, out, "msg=request request_id=req-42 method=POST path=/api/tasks status=201")
}
