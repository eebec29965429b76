package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ybolat/pomo/internal/marker"
	"github.com/ybolat/pomo/internal/models"
)

// ErrNoActiveSession is returned by CompleteSession and InterruptSession
// when no marker is present.
var ErrNoActiveSession = errors.New("no active Pomodoro session found")

// StartSession creates a new session starting now and writes the marker.
// If taskName is non-empty the task is resolved by exact name, created on
// miss; the task upsert and session insert share one transaction.
// plannedMinutes <= 0 means manual mode and falls back to the default 25
// for the stored planned duration.
func StartSession(taskName string, plannedMinutes int) (*models.Session, error) {
	active, err := marker.Read(dataDir)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("session %s is already active. Finish it with 'pomo complete' or 'pomo interrupt'", active.ID)
	}

	now := time.Now()
	planned := plannedMinutes
	if planned <= 0 {
		planned = 25
	}

	session := models.Session{
		ID:              fmt.Sprintf("session_%d", now.UnixMilli()),
		StartTime:       now,
		PlannedDuration: planned,
		Date:            now.Format(models.DateFormat),
	}

	err = DB.Transaction(func(tx *gorm.DB) error {
		if taskName != "" {
			task, err := findOrCreateTask(tx, taskName)
			if err != nil {
				return err
			}
			session.TaskID = &task.ID
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, err
	}

	m := marker.Marker{
		ID:        session.ID,
		StartTime: now,
		Duration:  planned,
		TaskID:    session.TaskID,
		TaskName:  taskName,
	}
	if err := marker.Write(dataDir, m); err != nil {
		return nil, fmt.Errorf("failed to write session marker: %w", err)
	}

	return &session, nil
}

// CompleteSession finishes the active session: end time and actual duration
// are recorded, the completed flag is set, and the linked task's counters
// advance by one pomodoro and the actual minutes. The marker is cleared
// only after the database writes succeed.
func CompleteSession() (*models.Session, error) {
	m, err := marker.Read(dataDir)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNoActiveSession
	}

	now := time.Now()
	actual := elapsedMinutes(m.StartTime, now)

	err = DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Session{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
			"end_time":        now,
			"actual_duration": actual,
			"completed":       true,
		})
		if res.Error != nil {
			return res.Error
		}
		if m.TaskID != nil {
			return tx.Model(&models.Task{}).Where("id = ?", *m.TaskID).Updates(map[string]interface{}{
				"completed_pomodoros": gorm.Expr("completed_pomodoros + 1"),
				"total_minutes":       gorm.Expr("total_minutes + ?", actual),
			}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := marker.Clear(dataDir); err != nil {
		return nil, err
	}

	var session models.Session
	if err := DB.First(&session, "id = ?", m.ID).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// InterruptSession ends the active session without completing it. The
// reason defaults to "Unknown". Task counters are never touched.
func InterruptSession(reason string) (*models.Session, error) {
	m, err := marker.Read(dataDir)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNoActiveSession
	}

	if reason == "" {
		reason = "Unknown"
	}

	now := time.Now()
	actual := elapsedMinutes(m.StartTime, now)

	err = DB.Model(&models.Session{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"end_time":            now,
		"actual_duration":     actual,
		"completed":           false,
		"interruption_reason": reason,
	}).Error
	if err != nil {
		return nil, err
	}

	if err := marker.Clear(dataDir); err != nil {
		return nil, err
	}

	var session models.Session
	if err := DB.First(&session, "id = ?", m.ID).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ActiveSession returns the marker of the in-progress session, or nil when
// none is active.
func ActiveSession() (*marker.Marker, error) {
	return marker.Read(dataDir)
}

// elapsedMinutes truncates toward zero, so a session completed within its
// first minute counts as 0 minutes.
func elapsedMinutes(start, end time.Time) int {
	return int(end.Sub(start).Minutes())
}
