package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/ybolat/pomo/internal/models"
)

var (
	DB *gorm.DB

	// dataDir is the directory holding pomodoro.db and the current-session
	// marker. Set by Initialize/InitializeAt.
	dataDir string
)

// Initialize sets up the database connection in the default data directory
// and runs migrations.
func Initialize() error {
	dir, err := defaultDataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	return InitializeAt(dir)
}

// InitializeAt opens the database inside dir, creating it if needed.
// Tests use this with a temporary directory.
func InitializeAt(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "pomodoro.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db
	dataDir = dir

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// DataDir returns the resolved data directory.
func DataDir() string {
	return dataDir
}

// defaultDataDir returns data/ next to the executable, which is where the
// database and marker live.
func defaultDataDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "data"), nil
}

// runMigrations creates/updates the schema and seeds the default daily goal.
func runMigrations() error {
	if err := DB.AutoMigrate(
		&models.Session{},
		&models.Task{},
		&models.Config{},
	); err != nil {
		return err
	}

	// INSERT OR IGNORE: keep an existing goal untouched.
	return DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Config{Key: "daily_goal", Value: "8"}).Error
}

// Close closes the database connection.
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
