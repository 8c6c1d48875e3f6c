package app

// pkg/app/kernel.go builds the router from the Application config. Project
// routes arrive through MountFunc so this file imports no app/ code.

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/pkg/metrics"
	"github.com/shashiranjanraj/tasker/pkg/middleware"
	"github.com/shashiranjanraj/tasker/pkg/reqid"
	"github.com/shashiranjanraj/tasker/pkg/response"
	"github.com/shashiranjanraj/tasker/pkg/router"
	"github.com/shashiranjanraj/tasker/pkg/spa"
)

func buildRouter(cfg *config.Config, mounts []MountFunc) *router.Router {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics: outermost for accurate total latency
	//  2. CORS: headers land before anything can fail
	//  3. GetHead: HEAD on a GET-only route runs the GET handler
	//  4. Request ID: inject unique ID before anything logs
	//  5. Logger: access log tagged with request_id
	//  6. Recovery: panics become a logged 500
	//  7. JSON body: parse or reject the payload
	//  8. Rate limiter (optional)
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(corsOptions(cfg)))
	r.Use(chimw.GetHead)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.JSONBody(cfg.MaxBodyBytes))
	if cfg.RateLimit > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimit, time.Minute).Middleware)
	}

	api := r.Group(spa.APIPrefix)
	api.Handle(http.MethodGet, "/metrics", "metrics", metrics.Handler())
	for _, mount := range mounts {
		mount(api)
	}

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w)
	})
	r.NotFound(spa.Handler(cfg.StaticDir, cfg.IndexFile).ServeHTTP)

	return r
}

func corsOptions(cfg *config.Config) middleware.CORSOptions {
	opts := middleware.DefaultCORSOptions()
	if len(cfg.CORSOrigins) > 0 {
		opts.AllowedOrigins = cfg.CORSOrigins
	}
	return opts
}
