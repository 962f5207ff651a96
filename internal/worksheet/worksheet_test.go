package worksheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rail44/abacus/calc"
	"github.com/rail44/abacus/internal/expr"
)

func TestEvaluate(t *testing.T) {
	content := `# prices
2 + 3

10 / 2
discount(100, 10)
1 / 0
oops(
`
	ev := expr.New(calc.New())
	result := Evaluate(ev, "test.txt", content)

	if len(result.Lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(result.Lines))
	}

	// Comment and blank lines are skipped but numbering follows the file.
	if result.Lines[0].Num != 2 || result.Lines[0].Value != 5 {
		t.Errorf("line 1 = %+v, want line 2 with value 5", result.Lines[0])
	}
	if result.Lines[1].Num != 4 || result.Lines[1].Value != 5 {
		t.Errorf("line 2 = %+v, want line 4 with value 5", result.Lines[1])
	}
	if result.Lines[2].Value != 90 {
		t.Errorf("discount line = %g, want 90", result.Lines[2].Value)
	}

	if !errors.Is(result.Lines[3].Err, calc.ErrDivisionByZero) {
		t.Errorf("division line error = %v, want ErrDivisionByZero", result.Lines[3].Err)
	}
	if result.Lines[4].Err == nil {
		t.Error("malformed line should carry a parse error")
	}

	if !result.Failed() {
		t.Error("Failed() = false, want true")
	}
}

func TestEvaluateAllSucceed(t *testing.T) {
	ev := expr.New(calc.New())
	result := Evaluate(ev, "test.txt", "1 + 1\n2 * 2\n")

	if result.Failed() {
		t.Error("Failed() = true, want false")
	}
	if len(result.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(result.Lines))
	}
}

func TestEvaluateFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "sheet.txt")
	if err := os.WriteFile(path, []byte("6 * 7\n"), 0644); err != nil {
		t.Fatalf("failed to write worksheet: %v", err)
	}

	ev := expr.New(calc.New())
	result, err := EvaluateFile(ev, path)
	if err != nil {
		t.Fatalf("EvaluateFile failed: %v", err)
	}
	if len(result.Lines) != 1 || result.Lines[0].Value != 42 {
		t.Errorf("unexpected result: %+v", result.Lines)
	}

	if _, err := EvaluateFile(ev, filepath.Join(tempDir, "missing.txt")); err == nil {
		t.Error("EvaluateFile on missing file succeeded, want error")
	}
}
