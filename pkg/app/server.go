package app

// pkg/app/server.go is the lifecycle chooser: bind a port for a conventional
// process, or stand down when a serverless host drives the handler.

import (
	"context"
	"fmt"
	"net"

	"github.com/shashiranjanraj/tasker/internal/server"
	"github.com/shashiranjanraj/tasker/pkg/logger"
)

// Run serves the application on the configured port until ctx is cancelled.
// Under a serverless host it returns nil immediately without binding; the
// host invokes Handler per request instead.
func (a *Application) Run(ctx context.Context) error {
	h := a.Handler()

	if a.cfg.Serverless {
		logger.Info("serverless host detected, not binding a port", "env", a.cfg.Env)
		return nil
	}

	ln, err := server.Listen(a.cfg.Addr())
	if err != nil {
		return err
	}

	port := a.cfg.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = fmt.Sprint(tcp.Port)
	}
	logger.Info(fmt.Sprintf("Server is listening on port %s", port))
	logger.Info(fmt.Sprintf("Environment: %s", a.cfg.Env))

	return server.Serve(ctx, ln, h, a.cfg.ShutdownTimeout)
}
