package interactive

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rail44/abacus/internal/expr"
	"github.com/rail44/abacus/internal/worksheet"
)

type status int

const (
	statusWatching status = iota
	statusEvaluating
	statusError
	statusDone
)

// FormatFunc renders a result value for display.
type FormatFunc func(float64) string

type model struct {
	filePath   string
	status     status
	lastUpdate time.Time
	err        error
	evaluator  *expr.Evaluator
	format     FormatFunc
	result     *worksheet.Result
	logs       []string

	width  int
	height int
}

type fileChangedMsg struct{}
type evaluatedMsg struct {
	result *worksheet.Result
	err    error
}
type logLineMsg string

// FileChanged is sent by the watcher when the worksheet was saved.
func FileChanged() tea.Msg {
	return fileChangedMsg{}
}

// LogLine forwards a log line into the view.
func LogLine(line string) tea.Msg {
	return logLineMsg(line)
}

func NewModel(filePath string, evaluator *expr.Evaluator, format FormatFunc) tea.Model {
	return model{
		filePath:  filePath,
		status:    statusWatching,
		evaluator: evaluator,
		format:    format,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case fileChangedMsg:
		m.status = statusEvaluating
		m.lastUpdate = time.Now()
		return m, m.evaluate()

	case evaluatedMsg:
		if msg.err != nil {
			m.status = statusError
			m.err = msg.err
		} else {
			m.status = statusDone
			m.result = msg.result
			m.err = nil
		}
		return m, nil

	case logLineMsg:
		m.logs = append(m.logs, string(msg))
		if len(m.logs) > 5 {
			m.logs = m.logs[len(m.logs)-5:]
		}
		return m, nil
	}

	return m, nil
}

func (m model) evaluate() tea.Cmd {
	return func() tea.Msg {
		result, err := worksheet.EvaluateFile(m.evaluator, m.filePath)
		return evaluatedMsg{result: result, err: err}
	}
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)
	fileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	exprStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("abacus - worksheet watch"))
	s.WriteString("\n\n")

	s.WriteString(fileStyle.Render(fmt.Sprintf("Watching: %s", m.filePath)))
	s.WriteString("\n\n")

	switch m.status {
	case statusWatching:
		s.WriteString(helpStyle.Render("Waiting for changes..."))
		s.WriteString("\n")
	case statusEvaluating:
		s.WriteString(helpStyle.Render("Evaluating..."))
		s.WriteString("\n")
	case statusError:
		s.WriteString(errStyle.Render("✗ "))
		if m.err != nil {
			s.WriteString(m.err.Error())
		}
		s.WriteString("\n")
	case statusDone:
		m.renderResult(&s)
	}

	if len(m.logs) > 0 {
		s.WriteString("\n")
		for _, line := range m.logs {
			s.WriteString(fileStyle.Render(line))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("Press 'q' to quit"))

	return s.String()
}

func (m model) renderResult(s *strings.Builder) {
	if m.result == nil || len(m.result.Lines) == 0 {
		s.WriteString(helpStyle.Render("No expressions in worksheet"))
		s.WriteString("\n")
		return
	}

	// Pad by display width, not bytes, so multi-byte expressions keep
	// the '=' column aligned.
	width := 0
	for _, line := range m.result.Lines {
		if w := lipgloss.Width(line.Source); w > width {
			width = w
		}
	}

	for _, line := range m.result.Lines {
		pad := strings.Repeat(" ", width-lipgloss.Width(line.Source))
		s.WriteString(exprStyle.Render(fmt.Sprintf("%3d  %s%s = ", line.Num, line.Source, pad)))
		if line.Err != nil {
			s.WriteString(errStyle.Render(line.Err.Error()))
		} else {
			s.WriteString(valueStyle.Render(m.format(line.Value)))
		}
		s.WriteString("\n")
	}

	if !m.lastUpdate.IsZero() {
		s.WriteString("\n")
		s.WriteString(fileStyle.Render(fmt.Sprintf("Updated %s", m.lastUpdate.Format("15:04:05"))))
		s.WriteString("\n")
	}
}
