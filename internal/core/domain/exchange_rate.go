package domain

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate is a directed conversion factor between two currencies.
// The ordered pair (FromCurrencyCode, ToCurrencyCode) is unique; A->B and
// B->A are independent rows. The system does not assume
// rate(A->B) * rate(B->A) == 1 - inversion is an explicit fallback in the
// conversion engine, never a stored invariant.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	AuditFields
}
