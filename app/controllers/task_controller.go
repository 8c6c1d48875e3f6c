package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/tasker/app/services"
	"github.com/shashiranjanraj/tasker/pkg/bind"
	"github.com/shashiranjanraj/tasker/pkg/logger"
	"github.com/shashiranjanraj/tasker/pkg/response"
	"github.com/shashiranjanraj/tasker/pkg/validate"
)

const taskNotFound = "Task not found"

type TaskController struct {
	service *services.TaskService
}

func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{service: service}
}

// Index handles GET /api/tasks.
func (c *TaskController) Index(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.service.List(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	response.Success(w, tasks)
}

// Show handles GET /api/tasks/{id}.
func (c *TaskController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	response.Success(w, task)
}

// Store handles POST /api/tasks.
func (c *TaskController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CreateTaskInput
	if !decode(w, r, &in) {
		return
	}

	task, err := c.service.Create(r.Context(), in)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	logger.WithCtx(r.Context()).Info("task created", "id", task.ID)
	response.Created(w, task)
}

// Update handles PUT /api/tasks/{id}.
func (c *TaskController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var in services.UpdateTaskInput
	if !decode(w, r, &in) {
		return
	}

	task, err := c.service.Update(r.Context(), id, in)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	response.Success(w, task)
}

// Destroy handles DELETE /api/tasks/{id}.
func (c *TaskController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.fail(w, r, err)
		return
	}
	logger.WithCtx(r.Context()).Info("task deleted", "id", id)
	response.NoContent(w)
}

func (c *TaskController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrTaskNotFound) {
		response.NotFound(w, taskNotFound)
		return
	}
	logger.WithCtx(r.Context()).Error("task request failed", "error", err)
	response.InternalError(w)
}

func taskID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(w, "Invalid task id")
		return 0, false
	}
	return uint(id), true
}

// decode binds and validates the JSON body into dest. An empty body is
// validated as a zero-value input so required fields still report.
func decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	errs, err := bind.JSON(r, dest)
	if errors.Is(err, bind.ErrEmptyBody) {
		errs, err = validate.Struct(dest), nil
	}
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return false
	}
	return true
}
