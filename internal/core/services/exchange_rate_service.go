package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/currency"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// ExchangeRateService provides admin operations on stored exchange rates.
// Currency codes are validated against the static registry; no self-rates.
type ExchangeRateService struct {
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo}
}

// buildExchangeRate validates a create request and assembles the domain rate.
func buildExchangeRate(req dto.CreateExchangeRateRequest, creatorUserID string, now time.Time) (domain.ExchangeRate, error) {
	fromCode := strings.ToUpper(req.FromCurrencyCode)
	toCode := strings.ToUpper(req.ToCurrencyCode)

	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return domain.ExchangeRate{}, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if fromCode == toCode {
		return domain.ExchangeRate{}, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}
	if !currency.IsValidCurrencyCode(fromCode) {
		return domain.ExchangeRate{}, fmt.Errorf("%w: 'from' currency code %q not found", apperrors.ErrValidation, fromCode)
	}
	if !currency.IsValidCurrencyCode(toCode) {
		return domain.ExchangeRate{}, fmt.Errorf("%w: 'to' currency code %q not found", apperrors.ErrValidation, toCode)
	}

	return domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}, nil
}

// CreateExchangeRate handles the creation (or upsert) of an exchange rate.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	rate, err := buildExchangeRate(req, creatorUserID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}
	return &rate, nil
}

// CreateExchangeRates validates every request, then stores the whole batch in
// one transaction. The first invalid entry rejects the batch with its index;
// duplicate pairs within one batch are rejected too, since the later entry
// would silently overwrite the earlier one.
func (s *ExchangeRateService) CreateExchangeRates(ctx context.Context, reqs []dto.CreateExchangeRateRequest, creatorUserID string) ([]domain.ExchangeRate, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: at least one exchange rate is required", apperrors.ErrValidation)
	}

	now := time.Now()
	rates := make([]domain.ExchangeRate, 0, len(reqs))
	seen := make(map[string]bool, len(reqs))
	for i, req := range reqs {
		rate, err := buildExchangeRate(req, creatorUserID, now)
		if err != nil {
			return nil, fmt.Errorf("rate %d: %w", i, err)
		}
		pair := rate.FromCurrencyCode + rate.ToCurrencyCode
		if seen[pair] {
			return nil, fmt.Errorf("%w: rate %d: duplicate pair %s to %s in batch", apperrors.ErrValidation, i, rate.FromCurrencyCode, rate.ToCurrencyCode)
		}
		seen[pair] = true
		rates = append(rates, rate)
	}

	if err := s.rateRepo.SaveExchangeRates(ctx, rates); err != nil {
		return nil, fmt.Errorf("failed to create exchange rates in service: %w", err)
	}
	return rates, nil
}

// GetExchangeRate retrieves the stored rate for a currency pair.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// ListExchangeRates retrieves all stored rates.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	return rates, nil
}

// DeleteExchangeRate removes a stored rate for the ordered pair.
func (s *ExchangeRateService) DeleteExchangeRate(ctx context.Context, fromCode, toCode string) error {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if err := s.rateRepo.DeleteExchangeRate(ctx, fromCode, toCode); err != nil {
		return fmt.Errorf("failed to delete exchange rate in service: %w", err)
	}
	return nil
}
