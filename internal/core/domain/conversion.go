package domain

import "time"

// RoundingMode selects the exact decimal rounding rule applied when a
// converted amount is reduced to a fixed number of decimal places.
type RoundingMode string

const (
	// RoundHalfUp rounds ties away from zero. Default.
	RoundHalfUp RoundingMode = "HALF_UP"
	// RoundUp always rounds away from zero.
	RoundUp RoundingMode = "UP"
	// RoundDown truncates toward zero.
	RoundDown RoundingMode = "DOWN"
	// RoundHalfEven rounds ties to the nearest even digit (banker's rounding).
	RoundHalfEven RoundingMode = "HALF_EVEN"
)

// ValidRoundingMode reports whether mode is one of the supported rules.
func ValidRoundingMode(mode RoundingMode) bool {
	switch mode {
	case RoundHalfUp, RoundUp, RoundDown, RoundHalfEven:
		return true
	}
	return false
}

// ConversionOptions controls how a converted amount is reduced for display.
type ConversionOptions struct {
	DecimalPlaces int32        `json:"decimalPlaces"`
	RoundingMode  RoundingMode `json:"roundingMode"`
}

// DefaultConversionOptions returns the standard 2-decimal-place HALF_UP options.
func DefaultConversionOptions() ConversionOptions {
	return ConversionOptions{DecimalPlaces: 2, RoundingMode: RoundHalfUp}
}

// ConversionItem is one amount in a batch conversion request.
type ConversionItem struct {
	Amount       string `json:"amount"`
	FromCurrency string `json:"fromCurrency"`
}

// ConversionResult is the value object produced by every conversion call.
// Amounts and the rate are exact decimal strings, never binary floats.
// Produced fresh on each call; never cached.
type ConversionResult struct {
	OriginalAmount     string       `json:"originalAmount"`
	ConvertedAmount    string       `json:"convertedAmount"`
	FromCurrency       string       `json:"fromCurrency"`
	ToCurrency         string       `json:"toCurrency"`
	Rate               string       `json:"rate"`
	RateLastUpdated    time.Time    `json:"rateLastUpdated"`
	RoundingMode       RoundingMode `json:"roundingMode"`
	DecimalPlaces      int32        `json:"decimalPlaces"`
	FormattedOriginal  string       `json:"formattedOriginal"`
	FormattedConverted string       `json:"formattedConverted"`
}

// ConversionTotal aggregates a batch of conversions into a single target
// currency. Total is the exact decimal sum of the converted amounts, rounded
// once at the end.
type ConversionTotal struct {
	Conversions    []ConversionResult `json:"conversions"`
	TargetCurrency string             `json:"targetCurrency"`
	Total          string             `json:"total"`
	FormattedTotal string             `json:"formattedTotal"`
}
