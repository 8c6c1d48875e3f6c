package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/tasker/app/services"
	"github.com/shashiranjanraj/tasker/pkg/logger"
	"github.com/shashiranjanraj/tasker/pkg/response"
)

type IndexController struct {
	service *services.TaskService
}

func NewIndexController(service *services.TaskService) *IndexController {
	return &IndexController{service: service}
}

// Ping handles GET /api/ping. It answers only after a database round trip.
func (c *IndexController) Ping(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Ping(r.Context()); err != nil {
		logger.WithCtx(r.Context()).Error("ping: database unreachable", "error", err)
		response.Error(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	response.Success(w, map[string]string{"result": "pong"})
}
