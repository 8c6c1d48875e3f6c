// Package routes registers the API collaborators on the /api group.
package routes

import (
	"github.com/shashiranjanraj/tasker/app/controllers"
	"github.com/shashiranjanraj/tasker/pkg/router"
)

// Index registers the health check.
func Index(index *controllers.IndexController) func(*router.Group) {
	return func(api *router.Group) {
		api.Get("/ping", "index.ping", index.Ping)
	}
}

// Tasks registers the task CRUD routes.
func Tasks(tasks *controllers.TaskController) func(*router.Group) {
	return func(api *router.Group) {
		api.Get("/tasks", "tasks.index", tasks.Index)
		api.Post("/tasks", "tasks.store", tasks.Store)
		api.Get("/tasks/{id}", "tasks.show", tasks.Show)
		api.Put("/tasks/{id}", "tasks.update", tasks.Update)
		api.Delete("/tasks/{id}", "tasks.destroy", tasks.Destroy)
	}
}
