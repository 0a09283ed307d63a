package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/currency"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
	"github.com/vendornet/vendor_management_app/internal/utils/moneymath"
)

// ConversionService converts monetary amounts between currencies using the
// stored exchange rates. It is stateless between calls: every conversion
// re-reads the rate store and produces a fresh ConversionResult.
type ConversionService struct {
	rateRepo portsrepo.ExchangeRateReader
}

// NewConversionService creates a new ConversionService.
func NewConversionService(rateRepo portsrepo.ExchangeRateReader) *ConversionService {
	return &ConversionService{rateRepo: rateRepo}
}

func resolveConversionOptions(opts *domain.ConversionOptions) (domain.ConversionOptions, error) {
	if opts == nil {
		return domain.DefaultConversionOptions(), nil
	}
	resolved := *opts
	if resolved.DecimalPlaces < 0 {
		return domain.ConversionOptions{}, fmt.Errorf("%w: decimalPlaces must be >= 0", apperrors.ErrValidation)
	}
	if resolved.RoundingMode == "" {
		resolved.RoundingMode = domain.RoundHalfUp
	}
	if !domain.ValidRoundingMode(resolved.RoundingMode) {
		return domain.ConversionOptions{}, fmt.Errorf("%w: unknown rounding mode %q", apperrors.ErrValidation, resolved.RoundingMode)
	}
	return resolved, nil
}

// Convert converts amount from one currency to another using the direct
// stored rate only. Same-currency conversions short-circuit with rate "1" and
// never consult the store.
func (s *ConversionService) Convert(ctx context.Context, amount, fromCurrency, toCurrency string, opts *domain.ConversionOptions) (*domain.ConversionResult, error) {
	resolved, err := resolveConversionOptions(opts)
	if err != nil {
		return nil, err
	}

	fromCode := strings.ToUpper(strings.TrimSpace(fromCurrency))
	toCode := strings.ToUpper(strings.TrimSpace(toCurrency))
	if !currency.IsValidCurrencyCode(fromCode) {
		return nil, apperrors.NewConversionError(apperrors.CodeInvalidCurrency, "unknown currency code %q", fromCode)
	}
	if !currency.IsValidCurrencyCode(toCode) {
		return nil, apperrors.NewConversionError(apperrors.CodeInvalidCurrency, "unknown currency code %q", toCode)
	}

	amt, err := moneymath.Parse(amount)
	if err != nil {
		return nil, apperrors.NewConversionError(apperrors.CodeInvalidAmount, "amount %q is not a finite decimal", amount)
	}

	if fromCode == toCode {
		return buildConversionResult(amt, fromCode, toCode, decimal.NewFromInt(1), time.Now(), resolved), nil
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewConversionError(apperrors.CodeRateNotFound, "no exchange rate found for %s to %s", fromCode, toCode)
		}
		return nil, fmt.Errorf("failed to look up exchange rate %s to %s: %w", fromCode, toCode, err)
	}

	return buildConversionResult(amt, fromCode, toCode, rate.Rate, rate.LastUpdatedAt, resolved), nil
}

// ConvertWithFallback behaves like Convert but, when no direct rate exists,
// looks up the inverse pair and converts with its exact decimal reciprocal.
// INVALID_CURRENCY and INVALID_AMOUNT from the direct attempt are returned
// unchanged; only RATE_NOT_FOUND triggers the fallback.
func (s *ConversionService) ConvertWithFallback(ctx context.Context, amount, fromCurrency, toCurrency string, opts *domain.ConversionOptions) (*domain.ConversionResult, error) {
	result, err := s.Convert(ctx, amount, fromCurrency, toCurrency, opts)
	if err == nil {
		return result, nil
	}
	if code, ok := apperrors.ConversionCode(err); !ok || code != apperrors.CodeRateNotFound {
		return nil, err
	}

	// The direct attempt already validated the codes, options and amount.
	resolved, _ := resolveConversionOptions(opts)
	fromCode := strings.ToUpper(strings.TrimSpace(fromCurrency))
	toCode := strings.ToUpper(strings.TrimSpace(toCurrency))
	amt, _ := moneymath.Parse(amount)

	inverse, lookupErr := s.rateRepo.FindExchangeRate(ctx, toCode, fromCode)
	if lookupErr != nil {
		if errors.Is(lookupErr, apperrors.ErrNotFound) {
			return nil, apperrors.NewConversionError(apperrors.CodeRateNotFound,
				"no exchange rate found for %s to %s in either direction", fromCode, toCode)
		}
		return nil, fmt.Errorf("failed to look up inverse exchange rate %s to %s: %w", toCode, fromCode, lookupErr)
	}

	rate, invErr := moneymath.InverseRate(inverse.Rate)
	if invErr != nil {
		return nil, fmt.Errorf("stored rate %s to %s is not invertible: %w", toCode, fromCode, invErr)
	}

	return buildConversionResult(amt, fromCode, toCode, rate, inverse.LastUpdatedAt, resolved), nil
}

// BatchConvert converts items into the target currency one at a time, in
// input order. Conversions are deliberately sequential: each one may hit the
// rate store, and the first failure aborts the batch.
func (s *ConversionService) BatchConvert(ctx context.Context, items []domain.ConversionItem, targetCurrency string, opts *domain.ConversionOptions) ([]domain.ConversionResult, error) {
	results := make([]domain.ConversionResult, 0, len(items))
	for i, item := range items {
		result, err := s.ConvertWithFallback(ctx, item.Amount, item.FromCurrency, targetCurrency, opts)
		if err != nil {
			return nil, fmt.Errorf("batch item %d (%s %s): %w", i, item.Amount, item.FromCurrency, err)
		}
		results = append(results, *result)
	}
	return results, nil
}

// CalculateTotal converts every item and sums the converted amounts with
// exact decimal addition, rounding the aggregate once at the end.
func (s *ConversionService) CalculateTotal(ctx context.Context, items []domain.ConversionItem, targetCurrency string, opts *domain.ConversionOptions) (*domain.ConversionTotal, error) {
	resolved, err := resolveConversionOptions(opts)
	if err != nil {
		return nil, err
	}

	results, err := s.BatchConvert(ctx, items, targetCurrency, opts)
	if err != nil {
		return nil, err
	}

	sum := decimal.Zero
	for _, r := range results {
		converted, parseErr := moneymath.Parse(r.ConvertedAmount)
		if parseErr != nil {
			return nil, fmt.Errorf("internal: converted amount %q did not round-trip: %w", r.ConvertedAmount, parseErr)
		}
		sum = moneymath.Add(sum, converted)
	}
	total := moneymath.RoundWithMode(sum, resolved.DecimalPlaces, resolved.RoundingMode)

	targetCode := strings.ToUpper(strings.TrimSpace(targetCurrency))
	return &domain.ConversionTotal{
		Conversions:    results,
		TargetCurrency: targetCode,
		Total:          total.StringFixed(resolved.DecimalPlaces),
		FormattedTotal: currency.GetCurrencySymbol(targetCode) + total.StringFixed(resolved.DecimalPlaces),
	}, nil
}

func buildConversionResult(amount decimal.Decimal, fromCode, toCode string, rate decimal.Decimal, rateUpdated time.Time, opts domain.ConversionOptions) *domain.ConversionResult {
	converted := moneymath.RoundWithMode(moneymath.Multiply(amount, rate), opts.DecimalPlaces, opts.RoundingMode)
	convertedStr := converted.StringFixed(opts.DecimalPlaces)
	return &domain.ConversionResult{
		OriginalAmount:     amount.String(),
		ConvertedAmount:    convertedStr,
		FromCurrency:       fromCode,
		ToCurrency:         toCode,
		Rate:               rate.String(),
		RateLastUpdated:    rateUpdated,
		RoundingMode:       opts.RoundingMode,
		DecimalPlaces:      opts.DecimalPlaces,
		FormattedOriginal:  currency.GetCurrencySymbol(fromCode) + amount.String(),
		FormattedConverted: currency.GetCurrencySymbol(toCode) + convertedStr,
	}
}
