package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tasker/app/models"
	"github.com/shashiranjanraj/tasker/pkg/cache"
	"github.com/shashiranjanraj/tasker/pkg/logger"
	"github.com/shashiranjanraj/tasker/pkg/metrics"
)

// listGenKey counts task writes. The cached list lives under a key carrying
// the generation it was read at, so a list read that races a write can only
// land under a generation no later reader asks for.
var listGenKey = cache.Key("tasks", "gen")

func listKey(gen int64) string { return cache.Key("tasks", "all", gen) }

// TaskRepository handles database operations for Task. The full task list is
// cached and every write moves readers to a fresh generation.
type TaskRepository struct {
	db    *gorm.DB
	cache cache.Store
	ttl   time.Duration
}

func NewTaskRepository(db *gorm.DB, store cache.Store, ttl time.Duration) *TaskRepository {
	if store == nil {
		store = cache.Nop{}
	}
	return &TaskRepository{db: db, cache: store, ttl: ttl}
}

// All returns every task, oldest first.
func (r *TaskRepository) All(ctx context.Context) ([]models.Task, error) {
	gen, err := r.cache.Incr(ctx, listGenKey, 0)
	cacheable := err == nil
	if !cacheable {
		logger.WithCtx(ctx).Warn("cache: read task list generation", "error", err)
	}

	var tasks []models.Task
	if cacheable && r.cache.Get(ctx, listKey(gen), &tasks) {
		return tasks, nil
	}

	start := time.Now()
	err = r.db.WithContext(ctx).Order("created_at asc").Order("id asc").Find(&tasks).Error
	metrics.ObserveDBQuery("select", start)
	if err != nil {
		return nil, err
	}
	if !cacheable {
		return tasks, nil
	}

	if err := r.cache.Set(ctx, listKey(gen), tasks, r.ttl); err != nil {
		logger.WithCtx(ctx).Warn("cache: store task list", "error", err)
	}
	return tasks, nil
}

// FindByID looks up a task by primary key. A missing row yields
// gorm.ErrRecordNotFound.
func (r *TaskRepository) FindByID(ctx context.Context, id uint) (models.Task, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var task models.Task
	err := r.db.WithContext(ctx).First(&task, id).Error
	return task, err
}

// Create persists a new task.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(task).Error
	metrics.ObserveDBQuery("insert", start)
	if err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Update persists changes to an existing task.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Save(task).Error
	metrics.ObserveDBQuery("update", start)
	if err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// Delete removes the task with id and reports whether a row was removed.
func (r *TaskRepository) Delete(ctx context.Context, id uint) (bool, error) {
	start := time.Now()
	res := r.db.WithContext(ctx).Delete(&models.Task{}, id)
	metrics.ObserveDBQuery("delete", start)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		r.invalidate(ctx)
	}
	return res.RowsAffected > 0, nil
}

// Ping makes a round trip to the database.
func (r *TaskRepository) Ping(ctx context.Context) error {
	defer metrics.ObserveDBQuery("ping", time.Now())

	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *TaskRepository) invalidate(ctx context.Context) {
	gen, err := r.cache.Incr(ctx, listGenKey, 1)
	if err != nil {
		logger.WithCtx(ctx).Warn("cache: bump task list generation", "error", err)
		return
	}
	if err := r.cache.Del(ctx, listKey(gen-1)); err != nil {
		logger.WithCtx(ctx).Warn("cache: drop task list", "error", err)
	}
}
