// Package handler is the serverless entry point. The host imports the
// package and invokes Handler once per request; the application is built on
// the first invocation of each cold start and reused afterwards.
package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/internal/bootstrap"
	"github.com/shashiranjanraj/tasker/pkg/logger"
	"github.com/shashiranjanraj/tasker/pkg/response"
)

var (
	once    sync.Once
	handler http.Handler
	initErr error
)

func boot() {
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}

	application, _, err := bootstrap.New(context.Background(), cfg)
	if err != nil {
		initErr = err
		return
	}
	handler = application.Handler()
}

// Handler serves one request through the shared application handler.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(boot)

	if initErr != nil {
		logger.Error("serverless bootstrap failed", "error", initErr)
		response.InternalError(w)
		return
	}
	handler.ServeHTTP(w, r)
}
