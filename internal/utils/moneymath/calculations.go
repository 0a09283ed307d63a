// Package moneymath provides the exact-decimal helpers used by the conversion
// and invoice-validation engines. Every monetary computation goes through
// shopspring/decimal; binary floating point would corrupt financial exactness
// and is never used.
package moneymath

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// SignificantDigits is the division precision carried through intermediate
// results before a final rounding step is applied.
const SignificantDigits = 20

// Parse converts an amount string into an exact decimal. Non-numeric input,
// NaN and infinities are rejected.
func Parse(amount string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a finite decimal: %w", amount, err)
	}
	return d, nil
}

// Add returns a + b exactly.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// Subtract returns a - b exactly.
func Subtract(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

// Multiply returns a * b exactly.
func Multiply(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// Divide returns a / b carried to SignificantDigits decimal digits.
func Divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, fmt.Errorf("division by zero")
	}
	return a.DivRound(b, SignificantDigits), nil
}

// InverseRate returns 1/rate carried to SignificantDigits decimal digits.
// This is the exact reciprocal used by the rate-inversion fallback; it must
// not be approximated in floating point.
func InverseRate(rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsZero() {
		return decimal.Zero, fmt.Errorf("cannot invert a zero rate")
	}
	return decimal.NewFromInt(1).DivRound(rate, SignificantDigits), nil
}

// RoundWithMode reduces d to the given number of decimal places using one of
// the four supported exact rounding rules. Unknown modes fall back to HALF_UP.
func RoundWithMode(d decimal.Decimal, places int32, mode domain.RoundingMode) decimal.Decimal {
	switch mode {
	case domain.RoundUp:
		return d.RoundUp(places)
	case domain.RoundDown:
		return d.RoundDown(places)
	case domain.RoundHalfEven:
		return d.RoundBank(places)
	default:
		return d.Round(places)
	}
}

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater than b.
func Compare(a, b decimal.Decimal) int {
	return a.Cmp(b)
}

// EqualsWithinPrecision reports whether a and b agree once both are rounded
// (half up) to the given number of decimal places.
func EqualsWithinPrecision(a, b decimal.Decimal, places int32) bool {
	return a.Round(places).Equal(b.Round(places))
}
