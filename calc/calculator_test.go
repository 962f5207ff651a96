package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	calc := New()
	result := calc.Add(2, 3)
	assert.Equal(t, 5.0, result)
}

func TestAddCommutative(t *testing.T) {
	calc := New()
	pairs := [][2]float64{
		{2, 3},
		{-1.5, 4.25},
		{0, 7},
		{1e300, 1e-300},
	}
	for _, p := range pairs {
		assert.Equal(t, calc.Add(p[0], p[1]), calc.Add(p[1], p[0]))
	}
}

func TestSubtract(t *testing.T) {
	calc := New()
	result := calc.Subtract(5, 3)
	assert.Equal(t, 2.0, result)
}

func TestMultiply(t *testing.T) {
	calc := New()
	result := calc.Multiply(4, 3)
	assert.Equal(t, 12.0, result)
}

func TestDivide(t *testing.T) {
	calc := New()
	result, err := calc.Divide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestDivideByZero(t *testing.T) {
	calc := New()
	_, err := calc.Divide(10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.EqualError(t, err, "Division by zero")
}

func TestDivideByNegativeZero(t *testing.T) {
	// -0.0 compares equal to 0.0 under IEEE rules, so it must fail too.
	calc := New()
	negZero := math.Copysign(0, -1)
	_, err := calc.Divide(10, negZero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestMultiplyDivideInverse(t *testing.T) {
	calc := New()
	cases := [][2]float64{
		{7, 3},
		{-2.5, 0.1},
		{1e10, 7e-3},
	}
	for _, c := range cases {
		a, b := c[0], c[1]
		got, err := calc.Divide(calc.Multiply(a, b), b)
		require.NoError(t, err)
		assert.InEpsilon(t, a, got, 1e-12)
	}
}

func TestNonFiniteOperandsPropagate(t *testing.T) {
	calc := New()

	assert.True(t, math.IsNaN(calc.Add(math.NaN(), 1)))
	assert.True(t, math.IsInf(calc.Multiply(math.Inf(1), 2), 1))
	assert.True(t, math.IsNaN(calc.Subtract(math.Inf(1), math.Inf(1))))

	// A NaN dividend is fine; only a zero divisor fails.
	got, err := calc.Divide(math.NaN(), 2)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	got, err = calc.Divide(1, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestStateless(t *testing.T) {
	// Construction always yields the same state, and no call order
	// influences any result.
	a, b := New(), New()
	assert.Equal(t, a.Precision(), b.Precision())
	assert.Equal(t, DefaultPrecision, a.Precision())

	a.Add(1, 1)
	_, err := a.Divide(1, 0)
	require.Error(t, err)
	assert.Equal(t, b.Multiply(6, 7), a.Multiply(6, 7))
}

func TestNewWithPrecision(t *testing.T) {
	assert.Equal(t, 4, NewWithPrecision(4).Precision())
	assert.Equal(t, 0, NewWithPrecision(-1).Precision())
}

func TestRound(t *testing.T) {
	calc := New()
	assert.Equal(t, 3.14, calc.Round(3.14159))
	assert.Equal(t, 2.68, calc.Round(2.675000001))
	assert.Equal(t, -1.5, calc.Round(-1.495))

	coarse := NewWithPrecision(0)
	assert.Equal(t, 3.0, coarse.Round(3.14159))

	assert.True(t, math.IsNaN(calc.Round(math.NaN())))
	assert.True(t, math.IsInf(calc.Round(math.Inf(-1)), -1))
}

func BenchmarkAdd(b *testing.B) {
	calc := New()
	for i := 0; i < b.N; i++ {
		calc.Add(1, 2)
	}
}
