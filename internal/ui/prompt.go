package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned by Prompt when the user leaves without an entry.
var ErrCancelled = errors.New("entry cancelled")

const promptCharLimit = 4096

// PromptModel asks for a single line of entry text.
type PromptModel struct {
	input     textinput.Model
	path      string
	styles    Styles
	width     int
	submitted bool
	cancelled bool
}

// NewPrompt builds the entry prompt for the log at path.
func NewPrompt(path, themeName string) PromptModel {
	input := textinput.New()
	input.Placeholder = "what happened?"
	input.CharLimit = promptCharLimit
	input.Prompt = "- "
	input.Focus()

	return PromptModel{
		input:  input,
		path:   path,
		styles: GetTheme(themeName).Styles(),
	}
}

// Init implements tea.Model.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PromptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	title := m.styles.Accent.Render("New entry") + m.styles.Muted.Render(" → "+m.path)
	help := m.styles.Muted.Render("enter save • esc cancel")
	return m.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.input.View(), help)) + "\n"
}

// Text returns the entered text, trimmed, and whether it was submitted.
func (m PromptModel) Text() (string, bool) {
	if !m.submitted {
		return "", false
	}
	return strings.TrimSpace(m.input.Value()), true
}

// Prompt runs the entry prompt and returns the submitted text.
func Prompt(ctx context.Context, path, themeName string) (string, error) {
	program := tea.NewProgram(NewPrompt(path, themeName), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}
	m, ok := final.(PromptModel)
	if !ok {
		return "", ErrCancelled
	}
	text, submitted := m.Text()
	if !submitted {
		return "", ErrCancelled
	}
	return text, nil
}
