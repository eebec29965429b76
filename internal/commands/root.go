package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ybolat/pomo/internal/db"
	"github.com/ybolat/pomo/internal/notify"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "A CLI Pomodoro timer and tracker",
	Long: `pomo is a command-line Pomodoro timer that records focus sessions,
links them to tasks, and renders daily, weekly, and monthly reports
from a local database.`,
}

// initDB initializes the database; CLI commands cannot run without it.
func initDB() {
	if err := db.Initialize(); err != nil {
		log.Fatal("failed to initialize database", "err", err)
	}
	notify.Init(db.DataDir())
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pomo %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(interruptCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
