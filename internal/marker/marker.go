// Package marker persists the current-session marker file. Its presence in
// the data directory is the sole signal that a Pomodoro is in progress, so
// it must survive process restarts and never exist half-written.
package marker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the marker file kept next to the database.
const FileName = ".current_session.json"

// Marker records the active session between start and complete/interrupt.
type Marker struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	Duration  int       `json:"duration"`
	TaskID    *string   `json:"task_id"`
	TaskName  string    `json:"task_name"`
}

func path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Write stores m atomically: the JSON is written to a temp file in the same
// directory and renamed over the marker path, so a crash mid-write leaves
// either the old marker or none at all.
func Write(dir string, m Marker) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create marker temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path(dir))
}

// Read returns the current marker, or nil when no session is active.
func Read(dir string) (*Marker, error) {
	data, err := os.ReadFile(path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var m Marker
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse marker file: %w", err)
	}
	return &m, nil
}

// Clear removes the marker. Clearing an absent marker is not an error.
func Clear(dir string) error {
	err := os.Remove(path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
