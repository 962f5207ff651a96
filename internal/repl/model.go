// Package repl implements the interactive calculator prompt.
package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rail44/abacus/internal/expr"
)

// FormatFunc renders a result value for display.
type FormatFunc func(float64) string

type entry struct {
	input  string
	output string
	isErr  bool
}

type model struct {
	input     textinput.Model
	evaluator *expr.Evaluator
	format    FormatFunc
	history   []entry

	width  int
	height int
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// New creates the REPL model.
func New(evaluator *expr.Evaluator, format FormatFunc) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "2 + 3 * 4"
	ti.Prompt = "> "
	ti.Focus()

	return model{
		input:     ti,
		evaluator: evaluator,
		format:    format,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == "quit" {
				return m, tea.Quit
			}
			m.history = append(m.history, m.evalLine(line))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) evalLine(line string) entry {
	v, err := m.evaluator.Eval(line)
	if err != nil {
		return entry{input: line, output: err.Error(), isErr: true}
	}
	return entry{input: line, output: m.format(v)}
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(promptStyle.Render("abacus"))
	s.WriteString(helpStyle.Render("  type an expression, 'exit' to leave"))
	s.WriteString("\n\n")

	// Keep the scrollback within the window. The header, prompt, and
	// spacing take 5 rows; anything shorter shows no history at all.
	history := m.history
	if m.height > 0 {
		visible := m.height - 5
		if visible < 0 {
			visible = 0
		}
		if len(history) > visible {
			history = history[len(history)-visible:]
		}
	}

	for _, e := range history {
		s.WriteString(inputStyle.Render("> " + e.input))
		s.WriteString("\n")
		if e.isErr {
			s.WriteString(errStyle.Render(e.output))
		} else {
			s.WriteString(valueStyle.Render(e.output))
		}
		s.WriteString("\n")
	}

	s.WriteString(m.input.View())
	s.WriteString("\n")

	return s.String()
}
