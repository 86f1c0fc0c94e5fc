package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
	twelve   = decimal.NewFromInt(12)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromInt creates a new Money instance from a whole currency amount
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Compound grows the amount at rate per period for the given number of
// periods. Multiplication is repeated so the result stays exact.
func (m Money) Compound(rate decimal.Decimal, periods int) Money {
	factor := decimal.NewFromInt(1).Add(rate)
	out := m.Decimal
	for i := 0; i < periods; i++ {
		out = out.Mul(factor)
	}
	return Money{out}
}

// MulInt multiplies by a whole number
func (m Money) MulInt(n int64) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(n))}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// Int64 returns the whole-unit value, floored, and whether it fits in an int64.
func (m Money) Int64() (int64, bool) {
	f := m.Decimal.Floor()
	if f.GreaterThan(maxInt64) || f.LessThan(minInt64) {
		return 0, false
	}
	return f.IntPart(), true
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}
