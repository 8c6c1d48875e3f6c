package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tasker/app/models"
	"github.com/shashiranjanraj/tasker/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_tasks_table", &CreateTasksTable{})
}

type CreateTasksTable struct{}

func (m *CreateTasksTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Task{})
}

func (m *CreateTasksTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Task{})
}
