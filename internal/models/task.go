package models

import (
	"time"
)

// Task is a named activity that sessions may be linked to. Counters only
// advance on session completion, never on interruption, and tasks are
// never deleted.
type Task struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name               string `gorm:"not null" json:"name"`
	CompletedPomodoros int    `gorm:"default:0" json:"completed_pomodoros"`
	TotalMinutes       int    `gorm:"default:0" json:"total_minutes"`
}
