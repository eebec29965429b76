package models

import (
	"time"
)

// Session represents one timed focus interval, either completed or
// interrupted. Date is the calendar day of StartTime and is the grouping
// key for all reports.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	StartTime          time.Time  `gorm:"not null" json:"start_time"`
	EndTime            *time.Time `json:"end_time"`
	PlannedDuration    int        `gorm:"default:25" json:"planned_duration"`
	ActualDuration     *int       `json:"actual_duration"`
	Completed          bool       `gorm:"default:false" json:"completed"`
	TaskID             *string    `json:"task_id"`
	InterruptionReason *string    `json:"interruption_reason"`
	Date               string     `gorm:"not null;index" json:"date"`
}

// DateFormat is the calendar-day layout used for Session.Date.
const DateFormat = "2006-01-02"
