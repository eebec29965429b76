package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ybolat/pomo/internal/db"
	"github.com/ybolat/pomo/internal/models"
	"github.com/ybolat/pomo/internal/report"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's summary",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		date := time.Now().Format(models.DateFormat)

		completed, interrupted, err := db.StatsForDate(date)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Print(report.Today(date, completed, interrupted, db.GetDailyGoal()))
	}),
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week's summary",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		now := time.Now()
		weekStart := report.WeekStart(now)

		rows, err := db.CompletedByDateSince(weekStart.Format(models.DateFormat))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Print(report.Week(weekStart, now, rows, db.GetDailyGoal()))
	}),
}

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show the monthly heatmap",
	Long:  "Render a calendar-grid heatmap of completed Pomodoros for a month, defaulting to the current one.",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")

		now := time.Now()
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}

		rows, err := db.CompletedByDateInMonth(fmt.Sprintf("%04d-%02d", year, month))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Print(report.Heatmap(year, month, rows, db.GetDailyGoal()))
	}),
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all sessions",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		if format != "json" {
			fmt.Println("Currently only JSON export is supported")
			return
		}

		sessions, err := db.AllSessions()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		out, err := report.ExportJSON(sessions)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(out)
	}),
}

func init() {
	heatmapCmd.Flags().Int("year", 0, "Year (defaults to current)")
	heatmapCmd.Flags().Int("month", 0, "Month 1-12 (defaults to current)")
	exportCmd.Flags().String("format", "json", "Export format")
}
