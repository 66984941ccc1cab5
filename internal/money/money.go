// Package money is the fixed-point arithmetic layer for the tax engine.
// Every monetary computation in the engine routes through decimal.Decimal;
// binary floating point is never used for money. Intermediate values keep
// full precision and are rounded to cents only at output boundaries.
package money

import (
	"github.com/shopspring/decimal"
)

// ArithmeticError reports an undefined operation inside the decimal layer,
// such as division by zero. It indicates a logic bug upstream and the
// calculation that produced it must be abandoned, not patched over.
type ArithmeticError struct {
	Op     string
	Detail string
}

func (e *ArithmeticError) Error() string {
	return "arithmetic error in " + e.Op + ": " + e.Detail
}

// Zero is the zero money value.
var Zero = decimal.Zero

// FromInt builds a decimal from whole dollars.
func FromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// FromString parses a decimal literal. Intended for statutory rates in
// tables and tests, where float conversion would defeat the point.
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal literal and panics on failure. Use only
// with compile-time constants.
func MustFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Add returns a + b.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// Sub returns a - b.
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

// Mul returns a * b.
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// Div returns a / b, failing with *ArithmeticError when b is zero.
func Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, &ArithmeticError{Op: "div", Detail: "division by zero"}
	}
	return a.Div(b), nil
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	return decimal.Min(a, b)
}

// Max returns the larger of a and b.
func Max(a, b decimal.Decimal) decimal.Decimal {
	return decimal.Max(a, b)
}

// Clamp constrains v to the closed interval [lo, hi].
func Clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Max(lo, decimal.Min(v, hi))
}

// ZeroFloor returns v, floored at zero. Statutory amounts that "shall not
// be less than zero" go through here.
func ZeroFloor(v decimal.Decimal) decimal.Decimal {
	if v.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return v
}

// RoundCents rounds to the nearest cent, half away from zero, which for the
// non-negative amounts produced by the engine matches the IRS round-half-up
// convention.
func RoundCents(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}
