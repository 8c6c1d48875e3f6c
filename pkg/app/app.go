// Package app assembles the HTTP application and decides how it runs.
//
//	a := app.New(cfg).
//	    Mount(routes.Index(indexController)).
//	    Mount(routes.Tasks(taskController))
//
//	http.Handle("/", a.Handler())   // serverless hosts call the handler directly
//	err := a.Run(ctx)               // or bind a port until ctx is cancelled
//
// The middleware chain and route table are built once, on the first call to
// Handler, and never change afterwards.
package app

import (
	"net/http"
	"sync"

	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/pkg/router"
)

// MountFunc registers routes on the /api group.
type MountFunc func(api *router.Group)

// Application is the central configuration object. Build one with New,
// attach route collaborators with Mount, then call Handler or Run.
type Application struct {
	cfg    *config.Config
	mounts []MountFunc

	once    sync.Once
	handler http.Handler
	routes  []router.RouteInfo
}

// New creates an Application for cfg.
func New(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// Config returns the configuration the application was built with.
func (a *Application) Config() *config.Config { return a.cfg }

// Mount adds route collaborators under /api, in order. Mounts added after the
// first Handler call are ignored.
func (a *Application) Mount(fns ...MountFunc) *Application {
	a.mounts = append(a.mounts, fns...)
	return a
}

// Handler returns the assembled http.Handler, building it on first use.
func (a *Application) Handler() http.Handler {
	a.once.Do(func() {
		r := buildRouter(a.cfg, a.mounts)
		a.handler = r.Handler()
		a.routes = r.Routes()
	})
	return a.handler
}

// Routes lists the registered routes.
func (a *Application) Routes() []router.RouteInfo {
	a.Handler()
	return a.routes
}
