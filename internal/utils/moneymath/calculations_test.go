package moneymath_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	"github.com/vendornet/vendor_management_app/internal/utils/moneymath"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParse(t *testing.T) {
	t.Run("valid decimal strings", func(t *testing.T) {
		for _, input := range []string{"0", "100", "-3.5", "0.0001", " 42.42 ", "1e5"} {
			_, err := moneymath.Parse(input)
			assert.NoError(t, err, "input %q", input)
		}
	})

	t.Run("preserves exact value", func(t *testing.T) {
		got, err := moneymath.Parse("123.456789")
		require.NoError(t, err)
		assert.True(t, got.Equal(d("123.456789")))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, input := range []string{"", "   ", "not-a-number", "NaN", "Inf", "1.2.3"} {
			_, err := moneymath.Parse(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestDivide(t *testing.T) {
	got, err := moneymath.Divide(d("10"), d("8"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("1.25")))

	_, err = moneymath.Divide(d("1"), decimal.Zero)
	assert.Error(t, err)
}

func TestDivide_CarriesTwentyDigits(t *testing.T) {
	got, err := moneymath.Divide(d("1"), d("3"))
	require.NoError(t, err)
	assert.Equal(t, "0.33333333333333333333", got.String())
}

func TestInverseRate(t *testing.T) {
	inv, err := moneymath.InverseRate(d("3"))
	require.NoError(t, err)
	assert.Equal(t, "0.33333333333333333333", inv.String())

	// Multiplying back recovers the original amount after one rounding step.
	roundTrip := moneymath.Multiply(d("3"), inv).Round(2)
	assert.True(t, roundTrip.Equal(d("1")))

	_, err = moneymath.InverseRate(decimal.Zero)
	assert.Error(t, err)
}

func TestInverseRate_ExactForTerminatingRates(t *testing.T) {
	inv, err := moneymath.InverseRate(d("0.8"))
	require.NoError(t, err)
	assert.True(t, inv.Equal(d("1.25")))
}

func TestRoundWithMode(t *testing.T) {
	cases := []struct {
		name     string
		mode     domain.RoundingMode
		input    string
		expected string
	}{
		{"half up rounds tie away from zero", domain.RoundHalfUp, "2.345", "2.35"},
		{"half up on negative tie", domain.RoundHalfUp, "-2.345", "-2.35"},
		{"up always moves away from zero", domain.RoundUp, "2.341", "2.35"},
		{"down truncates toward zero", domain.RoundDown, "2.349", "2.34"},
		{"half even takes the even neighbour", domain.RoundHalfEven, "2.345", "2.34"},
		{"half even rounds up to even", domain.RoundHalfEven, "2.355", "2.36"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := moneymath.RoundWithMode(d(tc.input), 2, tc.mode)
			assert.True(t, got.Equal(d(tc.expected)), "got %s want %s", got, tc.expected)
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, moneymath.Compare(d("1"), d("2")))
	assert.Equal(t, 0, moneymath.Compare(d("2.50"), d("2.5")))
	assert.Equal(t, 1, moneymath.Compare(d("3"), d("2")))
}

func TestEqualsWithinPrecision(t *testing.T) {
	assert.True(t, moneymath.EqualsWithinPrecision(d("1.001"), d("1.002"), 2))
	assert.False(t, moneymath.EqualsWithinPrecision(d("1.001"), d("1.006"), 2))
}
