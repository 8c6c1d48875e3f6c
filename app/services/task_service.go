package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tasker/app/models"
)

// ErrTaskNotFound is returned when no task has the requested id.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore is the persistence the service needs. *repositories.TaskRepository
// satisfies it.
type TaskStore interface {
	All(ctx context.Context) ([]models.Task, error)
	FindByID(ctx context.Context, id uint) (models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) (bool, error)
	Ping(ctx context.Context) error
}

// CreateTaskInput is the body of POST /api/tasks.
type CreateTaskInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"nullable,max=2000"`
}

// UpdateTaskInput is the body of PUT /api/tasks/{id}. Absent fields are left
// unchanged.
type UpdateTaskInput struct {
	Title       *string `json:"title" validate:"filled,max=255"`
	Description *string `json:"description" validate:"nullable,max=2000"`
	Done        *bool   `json:"done"`
}

type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

// List returns every task, oldest first. The result is never nil.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (models.Task, error) {
	task, err := s.store.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("find task %d: %w", id, err)
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (models.Task, error) {
	task := models.Task{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
	}
	if err := s.store.Create(ctx, &task); err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id uint, in UpdateTaskInput) (models.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return models.Task{}, err
	}

	if in.Title != nil {
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Done != nil {
		task.Done = *in.Done
	}

	if err := s.store.Update(ctx, &task); err != nil {
		return models.Task{}, fmt.Errorf("update task %d: %w", id, err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if !removed {
		return ErrTaskNotFound
	}
	return nil
}

// Ping checks that the task store is reachable.
func (s *TaskService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
