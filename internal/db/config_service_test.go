package db

import (
	"testing"

	"github.com/ybolat/pomo/internal/models"
)

func TestDailyGoalDefault(t *testing.T) {
	setupTestDB(t)

	if goal := GetDailyGoal(); goal != 8 {
		t.Errorf("GetDailyGoal = %d, want default 8", goal)
	}
}

func TestSetDailyGoal(t *testing.T) {
	setupTestDB(t)

	goal, err := SetDailyGoal("10")
	if err != nil {
		t.Fatalf("SetDailyGoal: %v", err)
	}
	if goal != 10 {
		t.Errorf("SetDailyGoal returned %d, want 10", goal)
	}
	if got := GetDailyGoal(); got != 10 {
		t.Errorf("GetDailyGoal = %d, want 10", got)
	}

	// Setting again overwrites, not duplicates.
	if _, err := SetDailyGoal("12"); err != nil {
		t.Fatal(err)
	}
	if got := GetDailyGoal(); got != 12 {
		t.Errorf("GetDailyGoal = %d, want 12", got)
	}
}

func TestSetDailyGoalRejectsBadInput(t *testing.T) {
	setupTestDB(t)

	for _, value := range []string{"abc", "", "-3", "0", "2.5"} {
		if _, err := SetDailyGoal(value); err == nil {
			t.Errorf("SetDailyGoal(%q) succeeded, want error", value)
		}
	}

	// Rejected writes leave the stored value untouched.
	if got := GetDailyGoal(); got != 8 {
		t.Errorf("GetDailyGoal = %d, want untouched default 8", got)
	}
}

func TestGetDailyGoalFallsBackOnCorruptValue(t *testing.T) {
	setupTestDB(t)

	// Simulate a value written before validation existed.
	if err := DB.Model(&models.Config{}).Where("key = ?", "daily_goal").
		Update("value", "not-a-number").Error; err != nil {
		t.Fatal(err)
	}

	if got := GetDailyGoal(); got != 8 {
		t.Errorf("GetDailyGoal = %d, want fallback 8", got)
	}
}
