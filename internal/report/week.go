package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ybolat/pomo/internal/db"
	"github.com/ybolat/pomo/internal/models"
)

// Week renders the weekly report from the Monday of the current week
// through today. The daily average always divides by 7, regardless of how
// many days of the week have passed.
func Week(weekStart, today time.Time, rows []db.DailyCount, goal int) string {
	var b strings.Builder

	b.WriteString("\n📊 Weekly Pomodoro Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "📆 Week of %s to %s\n\n",
		weekStart.Format(models.DateFormat), today.Format(models.DateFormat))

	if len(rows) == 0 {
		b.WriteString("📝 No completed Pomodoros this week yet!\n")
		return b.String()
	}

	totalPomodoros := 0
	totalMinutes := 0

	for _, row := range rows {
		totalPomodoros += row.Count
		totalMinutes += row.Minutes

		dayName := row.Date
		if day, err := time.Parse(models.DateFormat, row.Date); err == nil {
			dayName = day.Format("Mon")
		}

		fmt.Fprintf(&b, "%s %s: %d 🍅 (%d min) [%s]\n",
			dayName, row.Date, row.Count, row.Minutes, progressBar(row.Count, goal, 10))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "📈 Week Total: %d pomodoros, %d minutes\n", totalPomodoros, totalMinutes)
	fmt.Fprintf(&b, "🎯 Daily Average: %.1f pomodoros/day\n", float64(totalPomodoros)/7)

	return b.String()
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
