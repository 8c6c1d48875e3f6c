package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/tasker/app/models"
)

func init() {
	Register("tasks", SeedTasks)
}

var sampleTasks = []models.Task{
	{Title: "Set up the project", Description: "Install dependencies and run the dev server", Done: true},
	{Title: "Write the first task", Description: "Use the form to add a task"},
	{Title: "Mark a task as done", Description: "Toggle the checkbox next to a task"},
}

// SeedTasks inserts the sample tasks into an empty tasks table. A table that
// already holds rows is left alone so the seeder can be re-run safely.
func SeedTasks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Task{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tasks := make([]models.Task, len(sampleTasks))
	copy(tasks, sampleTasks)
	return db.Create(&tasks).Error
}
