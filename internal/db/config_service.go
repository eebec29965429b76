package db

import (
	"fmt"
	"strconv"

	"gorm.io/gorm/clause"

	"github.com/ybolat/pomo/internal/models"
)

// DefaultDailyGoal is used when no goal has been configured.
const DefaultDailyGoal = 8

// GetDailyGoal returns the configured daily goal. A missing or unparseable
// value falls back to the default so databases written before validation
// existed keep working.
func GetDailyGoal() int {
	var cfg models.Config

	if err := DB.First(&cfg, "key = ?", "daily_goal").Error; err != nil {
		return DefaultDailyGoal
	}

	goal, err := strconv.Atoi(cfg.Value)
	if err != nil || goal <= 0 {
		return DefaultDailyGoal
	}
	return goal
}

// SetDailyGoal validates and stores a new daily goal. Values are validated
// at write time so a bad value is rejected here instead of breaking a
// report later.
func SetDailyGoal(value string) (int, error) {
	goal, err := strconv.Atoi(value)
	if err != nil || goal <= 0 {
		return 0, fmt.Errorf("daily goal must be a positive integer, got %q", value)
	}

	err = DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Config{Key: "daily_goal", Value: strconv.Itoa(goal)}).Error
	if err != nil {
		return 0, err
	}

	return goal, nil
}
