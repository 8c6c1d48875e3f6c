package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tasker/pkg/logger"
)

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger.New(&buf, true).Info("Server is listening", "port", "5000")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Server is listening", line["msg"])
	assert.Equal(t, "5000", line["port"])
}

func TestNewProductionSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger.New(&buf, true).Debug("noise")
	assert.Empty(t, buf.String())
}

func TestWithCtx(t *testing.T) {
	assert.Same(t, logger.L, logger.WithCtx(context.Background()))

	var buf bytes.Buffer
	reqLog := logger.New(&buf, false).With("request_id", "abc")
	ctx := logger.InjectLogger(context.Background(), reqLog)

	logger.WithCtx(ctx).Info("hello")
	assert.Contains(t, buf.String(), "request_id=abc")
}

func TestFanoutWritesToEveryHandler(t *testing.T) {
	var a, b bytes.Buffer
	log := slog.New(logger.Fanout(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)).With("request_id", "r1")

	log.Info("task created", "id", 7)

	assert.Contains(t, a.String(), "request_id=r1")
	assert.Contains(t, a.String(), "id=7")
	assert.Contains(t, b.String(), `"request_id":"r1"`)
}

func TestFanoutRespectsLevels(t *testing.T) {
	var info, debug bytes.Buffer
	log := slog.New(logger.Fanout(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))

	log.Debug("details")

	assert.Empty(t, info.String())
	assert.Contains(t, debug.String(), "details")
}
