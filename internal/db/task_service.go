package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ybolat/pomo/internal/models"
)

// ErrEmptyTaskName is returned by CreateTask when no name is given.
var ErrEmptyTaskName = errors.New("please provide a task name")

// CreateTask inserts a new task with zero counters.
func CreateTask(name string) (*models.Task, error) {
	if name == "" {
		return nil, ErrEmptyTaskName
	}

	task := models.Task{
		ID:   fmt.Sprintf("task_%d", time.Now().UnixMilli()),
		Name: name,
	}
	if err := DB.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// GetTasks returns all tasks, most recently created first.
func GetTasks() ([]models.Task, error) {
	var tasks []models.Task

	if err := DB.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// findOrCreateTask resolves a task by exact name, first match wins. Names
// are stored as given, no trimming or case folding.
func findOrCreateTask(tx *gorm.DB, name string) (*models.Task, error) {
	var task models.Task

	err := tx.Where("name = ?", name).First(&task).Error
	if err == nil {
		return &task, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	task = models.Task{
		ID:   fmt.Sprintf("task_%d", time.Now().UnixMilli()),
		Name: name,
	}
	if err := tx.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}
