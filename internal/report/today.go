// Package report renders the textual summaries: daily and weekly reports,
// the monthly heatmap, and the JSON export. Everything here is a pure
// function over rows the db package aggregated; nothing mutates state.
package report

import (
	"fmt"
	"strings"

	"github.com/ybolat/pomo/internal/db"
)

// Today renders the daily report for one calendar date: completed and
// interrupted totals, goal comparison, and a 20-cell progress bar.
func Today(date string, completed, interrupted db.DayStats, goal int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n📅 Today's Pomodoro Report - %s\n", date)
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "✅ Completed: %d pomodoros (%d min)\n", completed.Count, completed.Minutes)
	fmt.Fprintf(&b, "⚠️  Interrupted: %d (%d min)\n", interrupted.Count, interrupted.Minutes)
	fmt.Fprintf(&b, "🎯 Daily Goal: %d/%d\n", completed.Count, goal)

	if completed.Count >= goal {
		b.WriteString("\n🎉 Daily goal achieved! Amazing work!\n")
	} else {
		fmt.Fprintf(&b, "\n💪 %d more to reach your daily goal!\n", goal-completed.Count)
	}

	fmt.Fprintf(&b, "\n[%s] %d/%d\n", progressBar(completed.Count, goal, 20), completed.Count, goal)

	return b.String()
}

// progressBar fills floor(width * min(count/goal, 1)) cells.
func progressBar(count, goal, width int) string {
	progress := float64(count) / float64(goal)
	if progress > 1 {
		progress = 1
	}
	filled := int(float64(width) * progress)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
