package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rnakano/pomostudy/internal/ledger"
	"github.com/rnakano/pomostudy/internal/models"
	"github.com/rnakano/pomostudy/internal/parser"
)

// logStep is the current step in the study-log wizard
type logStep int

const (
	logStepSubject logStep = iota
	logStepMinutes
	logStepComplete
)

// LogModel is the TUI model for recording study time interactively
type LogModel struct {
	currentStep logStep
	inputs      []textinput.Model
	width       int
	height      int

	service  *ledger.Service
	username string

	// State
	err           error
	validationErr string
	cancelled     bool
	recorded      *models.Entry
	merged        bool // true when the record folded into an existing entry
}

// NewLogModel creates the study-log wizard. Prefilled values come from
// command arguments that could not be used directly.
func NewLogModel(service *ledger.Service, username string, prefilled map[string]string) LogModel {
	inputs := make([]textinput.Model, 2)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	// Subject input
	inputs[0].Placeholder = "Subject or topic, like Math or English (required)"
	inputs[0].Focus()
	inputs[0].CharLimit = 100

	// Minutes input
	inputs[1].Placeholder = "Minutes studied: 25, 25m, 1h30m (0 allowed)"
	inputs[1].CharLimit = 20

	m := LogModel{
		currentStep: logStepSubject,
		inputs:      inputs,
		service:     service,
		username:    username,
	}

	if subject, ok := prefilled["subject"]; ok {
		m.inputs[0].SetValue(subject)
	}
	if minutes, ok := prefilled["minutes"]; ok {
		m.inputs[1].SetValue(minutes)
	}

	return m
}

// Init initializes the model
func (m LogModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m LogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.advance()
		}
	}

	// Forward everything else to the focused input
	var cmd tea.Cmd
	switch m.currentStep {
	case logStepSubject:
		m.inputs[0], cmd = m.inputs[0].Update(msg)
	case logStepMinutes:
		m.inputs[1], cmd = m.inputs[1].Update(msg)
	}
	return m, cmd
}

// advance validates the current step and moves to the next one,
// recording the entry after the last input.
func (m LogModel) advance() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case logStepSubject:
		if strings.TrimSpace(m.inputs[0].Value()) == "" {
			m.validationErr = "Subject must not be empty"
			return m, nil
		}
		m.currentStep = logStepMinutes
		m.inputs[0].Blur()
		m.inputs[1].Focus()
		return m, textinput.Blink

	case logStepMinutes:
		minutes, err := parser.ParseMinutes(m.inputs[1].Value())
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}

		subject := strings.TrimSpace(m.inputs[0].Value())
		existed := false
		if m.service.Merge {
			if e, lookupErr := m.service.Store.FindEntry(m.username, subject, m.service.Now().Format("2006-01-02")); lookupErr == nil && e != nil {
				existed = true
			}
		}

		entry, err := m.service.Record(m.username, subject, minutes)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.recorded = entry
		m.merged = existed
		m.currentStep = logStepComplete
		return m, tea.Quit
	}

	return m, nil
}

// View renders the wizard
func (m LogModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(titleStyle.Render("📚 Record study time"))
	b.WriteString("\n")

	whoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true)
	who := "anonymous ledger"
	if m.username != "" {
		who = "ledger of " + m.username
	}
	b.WriteString(whoStyle.Render(who))
	b.WriteString("\n\n")

	b.WriteString(m.renderField("Subject", m.inputs[0], m.currentStep == logStepSubject))
	b.WriteString("\n")
	b.WriteString(m.renderField("Minutes", m.inputs[1], m.currentStep == logStepMinutes))
	b.WriteString("\n")

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter next · esc cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(boxStyle.Render(b.String()))
}

// renderField renders one labelled input
func (m LogModel) renderField(label string, input textinput.Model, active bool) string {
	labelColor := ColorDisabledText
	if active {
		labelColor = ColorAccentBright
	}
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(labelColor)).
		Bold(active)
	return labelStyle.Render(label) + "\n" + input.View() + "\n"
}

// RunLogTUI starts the interactive study-log wizard and prints the outcome.
func RunLogTUI(service *ledger.Service, username string, prefilled map[string]string) error {
	model := NewLogModel(service, username, prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(LogModel); ok {
		switch {
		case m.cancelled:
			fmt.Println("❌ Nothing recorded.")
		case m.err != nil:
			fmt.Printf("❌ Error: %v\n", m.err)
		case m.recorded != nil:
			if m.merged {
				fmt.Printf("📚 Added to %s on %s (%s), now %dm total\n",
					m.recorded.Subject, m.recorded.Date, m.recorded.DayOfWeek, m.recorded.StudyMinutes)
			} else {
				fmt.Printf("📚 Recorded %dm of %s on %s (%s)\n",
					m.recorded.StudyMinutes, m.recorded.Subject, m.recorded.Date, m.recorded.DayOfWeek)
			}
		}
	}

	return nil
}
