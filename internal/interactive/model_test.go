package interactive

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/rail44/abacus/internal/worksheet"
)

func TestRenderResultAlignsMultibyteSources(t *testing.T) {
	m := model{
		filePath: "sheet.txt",
		status:   statusDone,
		format: func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
		result: &worksheet.Result{
			Path: "sheet.txt",
			Lines: []worksheet.Line{
				{Num: 1, Source: "1 + 1", Value: 2},
				{Num: 2, Source: "１０ / 2", Err: errors.New("offset 0: unexpected \"１０\"")},
				{Num: 3, Source: "discount(100, 10)", Value: 90},
			},
		},
	}

	out := m.View()

	var cols []int
	for _, row := range strings.Split(out, "\n") {
		if i := strings.Index(row, " = "); i >= 0 {
			cols = append(cols, lipgloss.Width(row[:i]))
		}
	}

	if len(cols) != 3 {
		t.Fatalf("got %d result rows, want 3:\n%s", len(cols), out)
	}
	for _, col := range cols[1:] {
		if col != cols[0] {
			t.Errorf("'=' columns misaligned: %v\n%s", cols, out)
		}
	}
}

func TestViewStatuses(t *testing.T) {
	m := model{filePath: "sheet.txt", status: statusWatching}
	if out := m.View(); !strings.Contains(out, "Waiting for changes") {
		t.Errorf("watching view missing status:\n%s", out)
	}

	m.status = statusError
	m.err = errors.New("boom")
	if out := m.View(); !strings.Contains(out, "boom") {
		t.Errorf("error view missing error:\n%s", out)
	}
}
