// Package worksheet evaluates files of calculator expressions.
//
// A worksheet is a plain text file with one expression per line. Blank lines
// and lines starting with '#' are ignored.
package worksheet

import (
	"fmt"
	"os"
	"strings"

	"github.com/rail44/abacus/internal/expr"
)

// Line is the evaluation result for a single worksheet line.
type Line struct {
	Num    int    // 1-based line number in the file
	Source string // the expression as written
	Value  float64
	Err    error
}

// Result holds the evaluation of a whole worksheet.
type Result struct {
	Path  string
	Lines []Line
}

// Failed reports whether any line failed to evaluate.
func (r *Result) Failed() bool {
	for _, l := range r.Lines {
		if l.Err != nil {
			return true
		}
	}
	return false
}

// Evaluate runs every expression line through the evaluator. Evaluation
// continues past failing lines; each failure is recorded on its Line.
func Evaluate(ev *expr.Evaluator, path string, content string) *Result {
	result := &Result{Path: path}

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		v, err := ev.Eval(line)
		result.Lines = append(result.Lines, Line{
			Num:    i + 1,
			Source: line,
			Value:  v,
			Err:    err,
		})
	}

	return result
}

// EvaluateFile reads and evaluates a worksheet file.
func EvaluateFile(ev *expr.Evaluator, path string) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet: %w", err)
	}
	return Evaluate(ev, path, string(content)), nil
}
