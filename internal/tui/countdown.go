package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CountdownModel renders a one-line countdown for a timed session. When
// the timer reaches zero the program quits with finished=true so the
// caller can auto-complete the session. Pressing q/esc/ctrl+c detaches:
// the program quits but the session stays active for manual completion.
type CountdownModel struct {
	total     time.Duration
	remaining time.Duration
	bar       progress.Model

	finished bool
	detached bool
}

// countdownTickMsg is sent every second to advance the timer.
type countdownTickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{}
	})
}

// NewCountdownModel creates a countdown for the given number of minutes.
func NewCountdownModel(minutes int) CountdownModel {
	bar := progress.New(
		progress.WithGradient(ColorAccentMain, ColorAccentBright),
		progress.WithWidth(20),
		progress.WithoutPercentage(),
	)
	total := time.Duration(minutes) * time.Minute
	return CountdownModel{
		total:     total,
		remaining: total,
		bar:       bar,
	}
}

// Init starts the ticker.
func (m CountdownModel) Init() tea.Cmd {
	return tick()
}

// Update handles messages.
func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		m.remaining -= time.Second
		if m.remaining <= 0 {
			m.remaining = 0
			m.finished = true
			return m, tea.Quit
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.detached = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the single countdown line.
func (m CountdownModel) View() string {
	if m.finished {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
		return style.Render("🎉 Time's up! Pomodoro completed!") + "\n"
	}
	if m.detached {
		return ""
	}

	mins := int(m.remaining.Minutes())
	secs := int(m.remaining.Seconds()) % 60

	elapsed := m.total - m.remaining
	pct := float64(elapsed) / float64(m.total)

	clockStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)

	return fmt.Sprintf("⏰ %s remaining  %s  %s",
		clockStyle.Render(fmt.Sprintf("%02d:%02d", mins, secs)),
		m.bar.ViewAs(pct),
		helpStyle.Render("q detach"))
}

// RunCountdown blocks for the countdown and reports whether it ran to
// zero. false means the user detached and the session is still active.
func RunCountdown(minutes int) (bool, error) {
	p := tea.NewProgram(NewCountdownModel(minutes))

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	model := finalModel.(CountdownModel)
	return model.finished, nil
}
