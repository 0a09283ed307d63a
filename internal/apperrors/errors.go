package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ConversionErrorCode is a machine-readable code identifying why a currency
// conversion failed. API layers map these to response classes without
// string-matching messages.
type ConversionErrorCode string

const (
	// CodeInvalidCurrency means an unrecognized currency code was supplied.
	CodeInvalidCurrency ConversionErrorCode = "INVALID_CURRENCY"
	// CodeInvalidAmount means the amount did not parse to a finite decimal.
	CodeInvalidAmount ConversionErrorCode = "INVALID_AMOUNT"
	// CodeRateNotFound means no exchange rate exists for the requested pair
	// (nor, when the fallback was used, for the inverse pair).
	CodeRateNotFound ConversionErrorCode = "RATE_NOT_FOUND"
)

// ConversionError is a typed error returned by the conversion engine.
type ConversionError struct {
	Code    ConversionErrorCode
	Message string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConversionError builds a ConversionError with a formatted message.
func NewConversionError(code ConversionErrorCode, format string, args ...any) *ConversionError {
	return &ConversionError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ConversionCode extracts the ConversionErrorCode from err, unwrapping as
// needed. The second return is false when err is not a ConversionError.
func ConversionCode(err error) (ConversionErrorCode, bool) {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr.Code, true
	}
	return "", false
}
