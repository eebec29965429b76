package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ybolat/pomo/internal/db"
	"github.com/ybolat/pomo/internal/notify"
	"github.com/ybolat/pomo/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a Pomodoro session",
	Long: `Start a new Pomodoro session, optionally linked to a task.

With a positive --duration the countdown runs in the foreground and the
session completes automatically when the timer hits zero. --duration 0
starts an open session for manual completion.

Examples:
  pomo start --task "Writing"          # 25-minute countdown
  pomo start --duration 50             # long session
  pomo start --duration 0              # manual mode, complete later`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		taskName, _ := cmd.Flags().GetString("task")
		duration, _ := cmd.Flags().GetInt("duration")

		session, err := db.StartSession(taskName, duration)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🍅 Pomodoro started! %d minutes.\n", session.PlannedDuration)
		if taskName != "" {
			fmt.Printf("🎯 Task: %s\n", taskName)
		} else {
			fmt.Println("🎯 Task: No task specified")
		}

		if duration <= 0 {
			fmt.Println("\n💡 Use 'pomo complete' when done, or 'pomo interrupt' if interrupted.")
			return
		}

		fmt.Printf("\n⏳ Focusing for %d minutes...\n", duration)
		finished, err := tui.RunCountdown(duration)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if finished {
			completeActive()
		} else {
			fmt.Println("\n💡 Timer detached, session is still running.")
			fmt.Println("   Use 'pomo complete' when done, or 'pomo interrupt' if interrupted.")
		}
	}),
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete the current session",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		completeActive()
	}),
}

var interruptCmd = &cobra.Command{
	Use:   "interrupt",
	Short: "Interrupt the current session",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		reason, _ := cmd.Flags().GetString("reason")

		session, err := db.InterruptSession(reason)
		if errors.Is(err, db.ErrNoActiveSession) {
			fmt.Println("❌ No active Pomodoro session found. Start one first!")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⚠️ Pomodoro interrupted after %d minutes\n", *session.ActualDuration)
		if reason == "" {
			reason = "Not specified"
		}
		fmt.Printf("📝 Reason: %s\n", reason)
		fmt.Println("💪 Don't worry, every session counts! Try again when ready.")
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session status",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		m, err := db.ActiveSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if m == nil {
			fmt.Println("No active Pomodoro session")
			return
		}

		task := m.TaskName
		if task == "" {
			task = "No task specified"
		}

		fmt.Printf("🍅 Session in progress (planned %d minutes)\n", m.Duration)
		fmt.Printf("🎯 Task: %s\n", task)
		fmt.Printf("Started at: %s\n", m.StartTime.Format("15:04:05"))
		fmt.Printf("Elapsed time: %s\n", formatDuration(time.Since(m.StartTime)))
	}),
}

// completeActive finishes the active session, shared by the complete
// command and the automatic countdown path.
func completeActive() {
	session, err := db.CompleteSession()
	if errors.Is(err, db.ErrNoActiveSession) {
		fmt.Println("❌ No active Pomodoro session found. Start one first!")
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("✅ Pomodoro completed! Duration: %d minutes\n", *session.ActualDuration)
	fmt.Println("📊 Great focus session!")

	if notify.Enabled() {
		notify.Ring(os.Stdout)
	}
}

func init() {
	startCmd.Flags().String("task", "", "Task name")
	startCmd.Flags().Int("duration", 25, "Duration in minutes, 0 for manual mode")
	interruptCmd.Flags().String("reason", "", "Reason for interruption")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
