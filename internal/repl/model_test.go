package repl

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rail44/abacus/calc"
	"github.com/rail44/abacus/internal/expr"
)

func newTestModel() tea.Model {
	evaluator := expr.New(calc.New())
	return New(evaluator, func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	})
}

func typeLine(t *testing.T, m tea.Model, line string) tea.Model {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestViewOnTinyTerminal(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})

	// Must render without panicking even though no history rows fit.
	out := m.View()
	if out == "" {
		t.Error("View returned empty output")
	}
}

func TestViewTrimsHistoryOnTinyTerminal(t *testing.T) {
	m := newTestModel()
	m = typeLine(t, m, "1 + 1")
	m = typeLine(t, m, "2 * 3")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})

	out := m.View()
	if strings.Contains(out, "> 1 + 1") || strings.Contains(out, "> 2 * 3") {
		t.Errorf("history should be fully trimmed on a 3-row terminal:\n%s", out)
	}
}

func TestViewShowsHistory(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = typeLine(t, m, "1 + 1")
	m = typeLine(t, m, "1 / 0")

	out := m.View()
	if !strings.Contains(out, "> 1 + 1") || !strings.Contains(out, "2") {
		t.Errorf("missing evaluated entry in view:\n%s", out)
	}
	if !strings.Contains(out, "Division by zero") {
		t.Errorf("missing error entry in view:\n%s", out)
	}
}
