package models

import "time"

// Task is a single to-do item.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Done        bool      `gorm:"not null;default:false" json:"done"`
	CreatedAt   time.Time `gorm:"index" json:"createAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
