package services

import (
	"context"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the stored rate for the ordered currency pair.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all stored rates.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate (admin operation).
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// CreateExchangeRates validates and persists a batch of rates atomically.
	// Any invalid entry rejects the whole batch before anything is stored.
	CreateExchangeRates(ctx context.Context, reqs []dto.CreateExchangeRateRequest, creatorUserID string) ([]domain.ExchangeRate, error)

	// DeleteExchangeRate removes the rate for the ordered pair (admin operation).
	DeleteExchangeRate(ctx context.Context, fromCode, toCode string) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
