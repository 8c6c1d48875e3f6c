// Package bootstrap wires configuration, storage and routes into an
// *app.Application. It is the one construction path shared by the CLI
// (cmd/tasker) and the serverless entry point (api/index.go).
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tasker/app/controllers"
	"github.com/shashiranjanraj/tasker/app/repositories"
	"github.com/shashiranjanraj/tasker/app/routes"
	"github.com/shashiranjanraj/tasker/app/services"
	"github.com/shashiranjanraj/tasker/config"
	"github.com/shashiranjanraj/tasker/pkg/app"
	"github.com/shashiranjanraj/tasker/pkg/cache"
	"github.com/shashiranjanraj/tasker/pkg/database"
	"github.com/shashiranjanraj/tasker/pkg/logger"
	"github.com/shashiranjanraj/tasker/pkg/migration"

	// Register migrations so Run and the migrate commands see them.
	_ "github.com/shashiranjanraj/tasker/database/migrations"
)

// Closer releases everything New opened. It is never nil.
type Closer func() error

// New builds the application for cfg. The returned Closer shuts down the
// database pool, the cache client and the log sink, in that order.
func New(ctx context.Context, cfg *config.Config) (*app.Application, Closer, error) {
	closeLog, err := logger.Setup(cfg)
	if err != nil {
		return nil, noop, err
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		closeLog()
		return nil, noop, err
	}

	store := cache.Open(ctx, cfg)

	tasks := services.NewTaskService(repositories.NewTaskRepository(db, store, cfg.Cache.TTL))

	application := app.New(cfg).
		Mount(routes.Index(controllers.NewIndexController(tasks))).
		Mount(routes.Tasks(controllers.NewTaskController(tasks)))

	closer := func() error {
		errs := []error{database.Close(db), store.Close()}
		closeLog()
		return errors.Join(errs...)
	}
	return application, closer, nil
}

// OpenDB opens the configured database and, when DB_AUTO_MIGRATE is set,
// applies pending migrations.
func OpenDB(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := migration.New(db, io.Discard).Run(); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	logger.Info("database connected", "driver", cfg.Database.Driver, "auto_migrate", cfg.Database.AutoMigrate)
	return db, nil
}

func noop() error { return nil }
