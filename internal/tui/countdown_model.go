package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rnakano/pomostudy/internal/timer"
)

// CountdownModel renders a running Pomodoro countdown. The timer owns
// the arithmetic; this model only polls it once per second and redraws.
type CountdownModel struct {
	width  int
	height int

	timer *timer.Timer
	bar   progress.Model

	remaining time.Duration

	// UI state
	finished bool // countdown ran out
	stopped  bool // user pressed S to end the session early
	exiting  bool // user pressed ESC/Q to abandon the countdown
}

// countdownTickMsg is sent every second to re-poll the timer
type countdownTickMsg struct{}

// NewCountdownModel creates a countdown TUI model over a started timer.
func NewCountdownModel(t *timer.Timer) CountdownModel {
	bar := progress.New(
		progress.WithGradient(ColorAccentMain, ColorAccentBright),
		progress.WithoutPercentage(),
	)
	return CountdownModel{
		timer:     t,
		bar:       bar,
		remaining: t.Remaining(),
	}
}

// Init starts the per-second tick
func (m CountdownModel) Init() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg{}
	})
}

// Update handles messages
func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		m.remaining = m.timer.Remaining()
		if m.timer.Done() {
			m.finished = true
			return m, tea.Quit
		}
		if !m.stopped && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return countdownTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := m.width - 12
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth > 0 {
			m.bar.Width = barWidth
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			// End the session early
			m.stopped = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the countdown
func (m CountdownModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var components []string

	// Header with the countdown kind
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(headerLine(m.timer.Kind())))

	// Remaining time, mm:ss
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, clockStyle.Render(formatClock(m.remaining)))

	// Progress bar
	barStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, barStyle.Render(m.bar.ViewAs(m.timer.Progress())))

	// Start time
	startedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	startedLine := fmt.Sprintf("Started at %s · %s total",
		m.timer.StartedAt().Format("15:04:05"),
		formatClock(m.timer.Duration()))
	components = append(components, startedStyle.Render(startedLine))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().
			Width(m.width).
			Height(m.height-2).
			Align(lipgloss.Center, lipgloss.Center).
			Render(lipgloss.JoinVertical(lipgloss.Left, joinSpaced(components)...)),
		m.renderHelpBar(),
	)

	return content
}

// headerLine returns the banner text for the countdown kind.
func headerLine(k timer.Kind) string {
	switch k {
	case timer.ShortBreak:
		return "☕ SHORT BREAK · step away for a bit"
	case timer.LongBreak:
		return "🌿 LONG BREAK · you earned it"
	default:
		return "🍅 FOCUS · stay on task"
	}
}

// formatClock renders a duration as mm:ss, or h:mm:ss past the hour.
func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// joinSpaced interleaves blank lines between components.
func joinSpaced(components []string) []string {
	var out []string
	for i, c := range components {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, c)
	}
	return out
}

// renderHelpBar renders the help bar at the bottom
func (m CountdownModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("s end early · esc/q abandon · ctrl+c force quit")
}

// RunCountdownTUI runs the countdown until it finishes or the user
// leaves, and prints the outcome.
func RunCountdownTUI(t *timer.Timer) error {
	model := NewCountdownModel(t)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m := finalModel.(CountdownModel)
	switch {
	case m.finished:
		fmt.Printf("✅ %s complete! (%s)\n", capitalize(t.Kind().String()), formatClock(t.Duration()))
		if t.Kind() == timer.Focus {
			fmt.Println("   Log it with 'pomostudy log <subject> <minutes>'.")
		}
	case m.stopped:
		elapsed := t.Duration() - t.Remaining()
		fmt.Printf("⏹️  %s ended early after %s.\n", capitalize(t.Kind().String()), formatClock(elapsed))
	default:
		fmt.Printf("❌ %s abandoned.\n", capitalize(t.Kind().String()))
	}

	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
