package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Credentials is the result of the login/register form.
type Credentials struct {
	Username  string
	Password  string
	Cancelled bool
}

// CredentialsModel is a two-field username/password form shared by the
// register and login commands. The password input is masked.
type CredentialsModel struct {
	title  string
	inputs []textinput.Model
	focus  int
	width  int
	height int

	validationErr string
	done          bool
	cancelled     bool
}

// NewCredentialsModel creates the form. The username may be prefilled
// from a command argument.
func NewCredentialsModel(title, username string) CredentialsModel {
	inputs := make([]textinput.Model, 2)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[0].Placeholder = "Username"
	inputs[0].CharLimit = 50
	inputs[0].Focus()

	inputs[1].Placeholder = "Password"
	inputs[1].CharLimit = 100
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '•'

	m := CredentialsModel{
		title:  title,
		inputs: inputs,
	}

	if username != "" {
		m.inputs[0].SetValue(username)
		m.inputs[0].Blur()
		m.inputs[1].Focus()
		m.focus = 1
	}

	return m
}

// Init initializes the model
func (m CredentialsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m CredentialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case "tab", "shift+tab":
			m.inputs[m.focus].Blur()
			m.focus = 1 - m.focus
			m.inputs[m.focus].Focus()
			return m, textinput.Blink

		case "enter":
			m.validationErr = ""
			if m.focus == 0 {
				if strings.TrimSpace(m.inputs[0].Value()) == "" {
					m.validationErr = "Username must not be empty"
					return m, nil
				}
				m.inputs[0].Blur()
				m.focus = 1
				m.inputs[1].Focus()
				return m, textinput.Blink
			}
			if m.inputs[1].Value() == "" {
				m.validationErr = "Password must not be empty"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View renders the form
func (m CredentialsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	labels := []string{"Username", "Password"}
	for i, input := range m.inputs {
		labelColor := ColorDisabledText
		if i == m.focus {
			labelColor = ColorAccentBright
		}
		labelStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(labelColor)).
			Bold(i == m.focus)
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("enter confirm · tab switch field · esc cancel"))

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

// RunCredentialsTUI collects a username and password.
func RunCredentialsTUI(title, username string) (Credentials, error) {
	model := NewCredentialsModel(title, username)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return Credentials{}, err
	}

	m := finalModel.(CredentialsModel)
	if m.cancelled || !m.done {
		return Credentials{Cancelled: true}, nil
	}
	return Credentials{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}, nil
}
