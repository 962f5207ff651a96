// Package calc provides basic arithmetic over float64 values.
//
// All operations follow IEEE-754 semantics: NaN and Infinity propagate
// through results rather than being rejected. The only failure mode in the
// package is division by zero.
package calc

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero,
// regardless of its sign.
var ErrDivisionByZero = errors.New("Division by zero")

// DefaultPrecision is the number of decimal places used by New.
const DefaultPrecision = 2

// Calculator provides basic math operations.
//
// A Calculator is immutable after construction and safe for concurrent use.
// The precision setting only affects Round; arithmetic results are never
// rounded implicitly.
type Calculator struct {
	precision int
}

// New creates a new calculator with the default precision.
func New() *Calculator {
	return &Calculator{precision: DefaultPrecision}
}

// NewWithPrecision creates a calculator that rounds to the given number of
// decimal places. Negative values are treated as zero.
func NewWithPrecision(precision int) *Calculator {
	if precision < 0 {
		precision = 0
	}
	return &Calculator{precision: precision}
}

// Precision returns the number of decimal places Round rounds to.
func (c *Calculator) Precision() int {
	return c.precision
}

// Add returns the sum of two numbers.
func (c *Calculator) Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference of two numbers.
func (c *Calculator) Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of two numbers.
func (c *Calculator) Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of two numbers.
//
// It fails with ErrDivisionByZero when b is zero. The comparison uses IEEE
// equality, so -0.0 is rejected as well.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Round rounds x to the calculator's precision. No operation applies it
// implicitly; it exists for presentation layers that want fixed decimals.
// NaN and Infinity pass through unchanged.
func (c *Calculator) Round(x float64) float64 {
	shift := math.Pow(10, float64(c.precision))
	return math.Round(x*shift) / shift
}
