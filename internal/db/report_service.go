package db

import (
	"github.com/ybolat/pomo/internal/models"
)

// DayStats aggregates session counts and minutes for one bucket.
type DayStats struct {
	Count   int
	Minutes int
}

// DailyCount is one date's completed-session totals.
type DailyCount struct {
	Date    string
	Count   int
	Minutes int
}

// StatsForDate returns completed and interrupted totals for one calendar
// date. Interrupted means not completed with a recorded reason.
func StatsForDate(date string) (completed, interrupted DayStats, err error) {
	err = DB.Model(&models.Session{}).
		Select("COUNT(*) AS count, COALESCE(SUM(actual_duration), 0) AS minutes").
		Where("date = ? AND completed = ?", date, true).
		Scan(&completed).Error
	if err != nil {
		return
	}

	err = DB.Model(&models.Session{}).
		Select("COUNT(*) AS count, COALESCE(SUM(actual_duration), 0) AS minutes").
		Where("date = ? AND completed = ? AND interruption_reason IS NOT NULL", date, false).
		Scan(&interrupted).Error
	return
}

// CompletedByDateSince groups completed sessions by date, from the given
// date onward, ordered by date.
func CompletedByDateSince(date string) ([]DailyCount, error) {
	var rows []DailyCount

	err := DB.Model(&models.Session{}).
		Select("date, COUNT(*) AS count, COALESCE(SUM(actual_duration), 0) AS minutes").
		Where("date >= ? AND completed = ?", date, true).
		Group("date").
		Order("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// CompletedByDateInMonth groups completed sessions by date within the month
// identified by prefix ("YYYY-MM").
func CompletedByDateInMonth(prefix string) ([]DailyCount, error) {
	var rows []DailyCount

	err := DB.Model(&models.Session{}).
		Select("date, COUNT(*) AS count, COALESCE(SUM(actual_duration), 0) AS minutes").
		Where("date LIKE ? AND completed = ?", prefix+"-%", true).
		Group("date").
		Order("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// AllSessions returns every session, most recent start first. Export order.
func AllSessions() ([]models.Session, error) {
	var sessions []models.Session

	if err := DB.Order("start_time DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}
