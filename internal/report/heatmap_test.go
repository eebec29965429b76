package report

import (
	"strings"
	"testing"

	"github.com/ybolat/pomo/internal/db"
)

func TestDayMarkerThresholds(t *testing.T) {
	tests := []struct {
		count, goal int
		want        string
	}{
		{0, 8, cellEmpty},
		{1, 8, cellStarted},
		{3, 8, cellStarted},
		{4, 8, cellHalfway}, // goal/2 with floor division
		{7, 8, cellHalfway},
		{8, 8, cellAchieved},
		{20, 8, cellAchieved},
		{1, 2, cellHalfway}, // half = 1
		{2, 2, cellAchieved},
		{1, 1, cellAchieved}, // half = 0, started band is empty
	}
	for _, tt := range tests {
		if got := dayMarker(tt.count, tt.goal); got != tt.want {
			t.Errorf("dayMarker(%d, %d) = %s, want %s", tt.count, tt.goal, got, tt.want)
		}
	}
}

func TestDayMarkerMonotonic(t *testing.T) {
	rank := map[string]int{cellEmpty: 0, cellStarted: 1, cellHalfway: 2, cellAchieved: 3}

	for goal := 1; goal <= 12; goal++ {
		prev := 0
		for count := 0; count <= goal*2; count++ {
			r := rank[dayMarker(count, goal)]
			if r < prev {
				t.Fatalf("goal %d: marker rank dropped at count %d", goal, count)
			}
			prev = r
		}
	}
}

func TestHeatmapGrid(t *testing.T) {
	// August 2026 starts on a Saturday, so the first row has five filler
	// cells and the 31st lands in the sixth grid row.
	rows := []db.DailyCount{
		{Date: "2026-08-01", Count: 8, Minutes: 200},
		{Date: "2026-08-31", Count: 1, Minutes: 25},
	}

	out := Heatmap(2026, 8, rows, 8)

	if !strings.Contains(out, "🔥 Pomodoro Heatmap - 2026/08") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, ". . . . . 🟢 ⬜") {
		t.Errorf("missing first week row:\n%s", out)
	}
	// The sixth row only appears because the month spills into it.
	if !strings.Contains(out, "🟠 . . . . . .") {
		t.Errorf("missing spill-over row:\n%s", out)
	}
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "Sun") {
		t.Errorf("missing weekday header:\n%s", out)
	}
}

func TestHeatmapSummary(t *testing.T) {
	rows := []db.DailyCount{
		{Date: "2026-08-03", Count: 5, Minutes: 125},
		{Date: "2026-08-04", Count: 3, Minutes: 75},
	}

	out := Heatmap(2026, 8, rows, 8)

	if !strings.Contains(out, "Total: 8 🍅 (200 min)") {
		t.Errorf("missing totals:\n%s", out)
	}
	if !strings.Contains(out, "Active days: 2/31") {
		t.Errorf("missing active days:\n%s", out)
	}
	if !strings.Contains(out, "Daily avg: 100 min (on active days)") {
		t.Errorf("missing daily average:\n%s", out)
	}
}

func TestHeatmapLegend(t *testing.T) {
	out := Heatmap(2026, 8, nil, 8)

	if !strings.Contains(out, "🟢 Goal achieved (8+)") {
		t.Errorf("missing achieved legend:\n%s", out)
	}
	if !strings.Contains(out, "🟡 Halfway (4-7)") {
		t.Errorf("missing halfway legend:\n%s", out)
	}
	// Empty month: no average line, every in-month day renders empty.
	if strings.Contains(out, "Daily avg") {
		t.Errorf("average rendered with no active days:\n%s", out)
	}
	if got := strings.Count(out, cellEmpty); got < 31 {
		t.Errorf("in-month empty cells = %d, want at least 31", got)
	}
}

func TestHeatmapFebruaryFitsFiveRows(t *testing.T) {
	// February 2027 starts on a Monday and has 28 days: exactly four rows,
	// so the trailing filler row must be dropped.
	out := Heatmap(2027, 2, nil, 8)

	gridRows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, cellEmpty) || strings.HasPrefix(line, ". ") {
			if !strings.Contains(line, "No sessions") {
				gridRows++
			}
		}
	}
	if gridRows != 5 {
		t.Errorf("grid rows = %d, want 5 (four day rows plus one filler):\n%s", gridRows, out)
	}
}
