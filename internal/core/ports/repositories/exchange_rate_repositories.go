package repositories

import (
	"context"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the rate for the ordered currency pair.
	// Returns apperrors.ErrNotFound when no direct rate exists; callers decide
	// whether to fall back to the inverse pair.
	FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all stored rates.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts or updates the rate for its ordered pair.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// SaveExchangeRates upserts all given rates in one transaction; either
	// every rate is stored or none are.
	SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error

	// DeleteExchangeRate removes the rate for the ordered pair.
	DeleteExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
