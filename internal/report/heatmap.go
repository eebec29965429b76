package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ybolat/pomo/internal/db"
)

// Heatmap cell markers.
const (
	cellOutside  = "."  // grid cell outside the month
	cellEmpty    = "⬜" // in-month day with no sessions
	cellStarted  = "🟠" // below half the goal
	cellHalfway  = "🟡" // at least half the goal
	cellAchieved = "🟢" // goal reached
)

// Heatmap renders a 6x7 Mon-Sun calendar grid for one month, marking each
// day by how its completed-session count compares to the daily goal, plus
// a legend and month totals.
func Heatmap(year, month int, rows []db.DailyCount, goal int) string {
	byDate := make(map[string]db.DailyCount, len(rows))
	for _, row := range rows {
		byDate[row.Date] = row
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
	startOffset := (int(first.Weekday()) + 6) % 7 // Monday = 0

	var grid [6][7]string
	for week := range grid {
		for day := range grid[week] {
			grid[week][day] = cellOutside
		}
	}

	dayNum := 1
	for week := 0; week < 6; week++ {
		for day := 0; day < 7; day++ {
			idx := week*7 + day
			if idx < startOffset || dayNum > daysInMonth {
				continue
			}

			date := fmt.Sprintf("%04d-%02d-%02d", year, month, dayNum)
			if row, ok := byDate[date]; ok {
				grid[week][day] = dayMarker(row.Count, goal)
			} else {
				grid[week][day] = cellEmpty
			}
			dayNum++
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "\n🔥 Pomodoro Heatmap - %d/%02d\n", year, month)
	b.WriteString(strings.Repeat("=", 50) + "\n")

	for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		fmt.Fprintf(&b, "%-5s ", name)
	}
	b.WriteString("\n")

	for week := 0; week < 6; week++ {
		hasContent := false
		for _, cell := range grid[week] {
			if cell != cellOutside {
				hasContent = true
				break
			}
		}
		// The last row is usually empty filler, skip it unless the month
		// spills into it.
		if !hasContent && week == 5 {
			continue
		}
		b.WriteString(strings.Join(grid[week][:], " ") + "\n")
	}

	half := goal / 2
	b.WriteString("\nLegend:\n")
	fmt.Fprintf(&b, "  %s Goal achieved (%d+)\n", cellAchieved, goal)
	fmt.Fprintf(&b, "  %s Halfway (%d-%d)\n", cellHalfway, half, goal-1)
	fmt.Fprintf(&b, "  %s Started (1-%d)\n", cellStarted, half)
	fmt.Fprintf(&b, "  %s No sessions\n", cellEmpty)

	totalPomodoros := 0
	totalMinutes := 0
	for _, row := range rows {
		totalPomodoros += row.Count
		totalMinutes += row.Minutes
	}
	activeDays := len(rows)

	b.WriteString("\n📊 Month Summary:\n")
	fmt.Fprintf(&b, "  Total: %d 🍅 (%d min)\n", totalPomodoros, totalMinutes)
	fmt.Fprintf(&b, "  Active days: %d/%d\n", activeDays, daysInMonth)
	if activeDays > 0 {
		fmt.Fprintf(&b, "  Daily avg: %.0f min (on active days)\n", float64(totalMinutes)/float64(activeDays))
	}

	return b.String()
}

// dayMarker assigns the heatmap cell for a day with count completed
// sessions. Thresholds use integer floor division of the goal, so the
// marker is monotonic in count for any positive goal.
func dayMarker(count, goal int) string {
	half := goal / 2
	switch {
	case count >= goal:
		return cellAchieved
	case half > 0 && count >= half:
		return cellHalfway
	case count > 0:
		return cellStarted
	default:
		return cellEmpty
	}
}
