package services

import (
	"context"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// ConversionSvcFacade is the currency conversion engine contract.
// All amounts in and out are exact decimal strings. Failures surface as
// *apperrors.ConversionError carrying a machine-readable code.
type ConversionSvcFacade interface {
	// Convert converts amount from one currency to another using the direct
	// stored rate only. A nil opts means 2 decimal places, HALF_UP.
	Convert(ctx context.Context, amount, fromCurrency, toCurrency string, opts *domain.ConversionOptions) (*domain.ConversionResult, error)

	// ConvertWithFallback behaves like Convert but, when no direct rate
	// exists, retries with the exact reciprocal of the inverse pair's rate.
	// Only RATE_NOT_FOUND triggers the fallback; validation errors from the
	// direct attempt are returned unchanged.
	ConvertWithFallback(ctx context.Context, amount, fromCurrency, toCurrency string, opts *domain.ConversionOptions) (*domain.ConversionResult, error)

	// BatchConvert converts each item into the target currency sequentially,
	// returning one result per item in input order.
	BatchConvert(ctx context.Context, items []domain.ConversionItem, targetCurrency string, opts *domain.ConversionOptions) ([]domain.ConversionResult, error)

	// CalculateTotal converts each item and additionally sums the converted
	// amounts with exact decimal addition, rounding once at the end.
	CalculateTotal(ctx context.Context, items []domain.ConversionItem, targetCurrency string, opts *domain.ConversionOptions) (*domain.ConversionTotal, error)
}
