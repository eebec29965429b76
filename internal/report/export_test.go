package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ybolat/pomo/internal/models"
)

func TestExportJSONEmpty(t *testing.T) {
	out, err := ExportJSON(nil)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if out != "[]" {
		t.Errorf("ExportJSON(nil) = %q, want []", out)
	}
}

func TestExportJSONOpenSessionHasNulls(t *testing.T) {
	start := time.Date(2026, 8, 25, 9, 0, 0, 0, time.Local)
	sessions := []models.Session{{
		ID:              "session_1",
		StartTime:       start,
		PlannedDuration: 25,
		Date:            "2026-08-25",
	}}

	out, err := ExportJSON(sessions)
	if err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{"end_time", "actual_duration", "task_id", "interruption_reason"} {
		if !strings.Contains(out, `"`+field+`": null`) {
			t.Errorf("%s not null in:\n%s", field, out)
		}
	}
	if !strings.Contains(out, `"completed": false`) {
		t.Errorf("missing completed flag:\n%s", out)
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	start := time.Date(2026, 8, 25, 9, 0, 0, 0, time.Local)
	end := start.Add(25 * time.Minute)
	actual := 25
	taskID := "task_9"
	sessions := []models.Session{{
		ID:              "session_2",
		StartTime:       start,
		EndTime:         &end,
		PlannedDuration: 25,
		ActualDuration:  &actual,
		Completed:       true,
		TaskID:          &taskID,
		Date:            "2026-08-25",
	}}

	out, err := ExportJSON(sessions)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("len = %d, want 1", len(decoded))
	}

	rec := decoded[0]
	if rec["id"] != "session_2" || rec["completed"] != true || rec["task_id"] != taskID {
		t.Errorf("record = %+v", rec)
	}
	if _, err := time.Parse(time.RFC3339, rec["start_time"].(string)); err != nil {
		t.Errorf("start_time not RFC 3339: %v", rec["start_time"])
	}
	if _, err := time.Parse(time.RFC3339, rec["end_time"].(string)); err != nil {
		t.Errorf("end_time not RFC 3339: %v", rec["end_time"])
	}
	if rec["actual_duration"].(float64) != 25 {
		t.Errorf("actual_duration = %v", rec["actual_duration"])
	}
}
