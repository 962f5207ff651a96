// Package expr evaluates calculator expressions.
//
// The grammar covers float literals, the four binary operators with the
// usual precedence, unary minus, parentheses, and a discount(price, percent)
// call form. Every binary operation is dispatched through calc.Calculator,
// so division by zero surfaces calc.ErrDivisionByZero.
package expr

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/rail44/abacus/calc"
)

// Evaluator evaluates expressions against a single calculator.
type Evaluator struct {
	calc *calc.Calculator
}

// New creates an evaluator backed by the given calculator.
func New(c *calc.Calculator) *Evaluator {
	return &Evaluator{calc: c}
}

// Eval parses and evaluates a single expression.
func (e *Evaluator) Eval(input string) (float64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, fmt.Errorf("empty expression")
	}

	p := newParser(input, e.calc)
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.tok != scanner.EOF {
		return 0, p.errorf("unexpected %q", p.text())
	}
	return v, nil
}

// parser is a recursive-descent parser that evaluates as it goes.
type parser struct {
	s       scanner.Scanner
	calc    *calc.Calculator
	tok     rune
	scanErr error
}

func newParser(input string, c *calc.Calculator) *parser {
	p := &parser{calc: c}
	p.s.Init(strings.NewReader(input))
	p.s.Mode = scanner.ScanInts | scanner.ScanFloats | scanner.ScanIdents
	p.s.Error = func(_ *scanner.Scanner, msg string) {
		if p.scanErr == nil {
			p.scanErr = fmt.Errorf("offset %d: %s", p.s.Pos().Offset, msg)
		}
	}
	p.next()
	return p
}

func (p *parser) next() {
	p.tok = p.s.Scan()
}

func (p *parser) text() string {
	if p.tok == scanner.EOF {
		return "end of expression"
	}
	return p.s.TokenText()
}

func (p *parser) errorf(format string, args ...any) error {
	if p.scanErr != nil {
		return p.scanErr
	}
	pos := p.s.Pos().Offset
	return fmt.Errorf("offset %d: %s", pos, fmt.Sprintf(format, args...))
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left = p.calc.Add(left, right)
		} else {
			left = p.calc.Subtract(left, right)
		}
	}
	return left, nil
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for p.tok == '*' || p.tok == '/' {
		op := p.tok
		pos := p.s.Pos().Offset
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left = p.calc.Multiply(left, right)
		} else {
			left, err = p.calc.Divide(left, right)
			if err != nil {
				return 0, fmt.Errorf("offset %d: %w", pos, err)
			}
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (float64, error) {
	if p.tok == '-' {
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, error) {
	switch p.tok {
	case scanner.Int, scanner.Float:
		v, err := strconv.ParseFloat(p.s.TokenText(), 64)
		if err != nil {
			return 0, p.errorf("invalid number %q", p.s.TokenText())
		}
		p.next()
		return v, nil

	case '(':
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.tok != ')' {
			return 0, p.errorf("expected ')', got %q", p.text())
		}
		p.next()
		return v, nil

	case scanner.Ident:
		return p.parseCall()

	default:
		return 0, p.errorf("unexpected %q", p.text())
	}
}

// parseCall handles the discount(price, percent) form.
func (p *parser) parseCall() (float64, error) {
	name := p.s.TokenText()
	if name != "discount" {
		return 0, p.errorf("unknown function %q", name)
	}
	p.next()
	if p.tok != '(' {
		return 0, p.errorf("expected '(' after %q", name)
	}
	p.next()

	price, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.tok != ',' {
		return 0, p.errorf("expected ',', got %q", p.text())
	}
	p.next()

	percent, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.tok != ')' {
		return 0, p.errorf("expected ')', got %q", p.text())
	}
	p.next()

	return calc.ApplyDiscount(price, percent), nil
}
