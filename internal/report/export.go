package report

import (
	"encoding/json"
	"time"

	"github.com/ybolat/pomo/internal/models"
)

// sessionRecord is the flat export shape. Unset fields serialize as JSON
// null, matching the on-disk schema's nullable columns.
type sessionRecord struct {
	ID                 string  `json:"id"`
	StartTime          string  `json:"start_time"`
	EndTime            *string `json:"end_time"`
	PlannedDuration    int     `json:"planned_duration"`
	ActualDuration     *int    `json:"actual_duration"`
	Completed          bool    `json:"completed"`
	TaskID             *string `json:"task_id"`
	InterruptionReason *string `json:"interruption_reason"`
	Date               string  `json:"date"`
}

// ExportJSON dumps sessions as an indented JSON list, timestamps in
// RFC 3339. Zero sessions yields an empty list, not null.
func ExportJSON(sessions []models.Session) (string, error) {
	records := make([]sessionRecord, 0, len(sessions))

	for _, s := range sessions {
		rec := sessionRecord{
			ID:                 s.ID,
			StartTime:          s.StartTime.Format(time.RFC3339),
			PlannedDuration:    s.PlannedDuration,
			ActualDuration:     s.ActualDuration,
			Completed:          s.Completed,
			TaskID:             s.TaskID,
			InterruptionReason: s.InterruptionReason,
			Date:               s.Date,
		}
		if s.EndTime != nil {
			end := s.EndTime.Format(time.RFC3339)
			rec.EndTime = &end
		}
		records = append(records, rec)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
