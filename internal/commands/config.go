package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ybolat/pomo/internal/db"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var dailyGoalCmd = &cobra.Command{
	Use:   "daily_goal",
	Short: "Get or set the daily Pomodoro goal",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		value, _ := cmd.Flags().GetString("value")

		if value == "" {
			fmt.Printf("📊 Current daily goal: %d pomodoros\n", db.GetDailyGoal())
			return
		}

		goal, err := db.SetDailyGoal(value)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Daily goal set to %d pomodoros\n", goal)
	}),
}

func init() {
	dailyGoalCmd.Flags().String("value", "", "New goal value")
	configCmd.AddCommand(dailyGoalCmd)
}
