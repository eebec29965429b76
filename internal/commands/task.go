package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ybolat/pomo/internal/db"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")

		task, err := db.CreateTask(name)
		if errors.Is(err, db.ErrEmptyTaskName) {
			fmt.Println("❌ Please provide a task name")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Task '%s' added!\n", task.Name)
	}),
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		tasks, err := db.GetTasks()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(tasks) == 0 {
			fmt.Println("📝 No tasks yet!")
			return
		}

		fmt.Println("\n📋 Your Tasks:")
		fmt.Println(strings.Repeat("=", 50))
		for _, task := range tasks {
			fmt.Printf("  • %s\n", task.Name)
			fmt.Printf("    🍅 %d pomodoros | ⏱ %d min | 📅 %s\n\n",
				task.CompletedPomodoros, task.TotalMinutes, task.CreatedAt.Format("2006-01-02"))
		}
	}),
}

func init() {
	taskAddCmd.Flags().String("name", "", "Task name")
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
}
