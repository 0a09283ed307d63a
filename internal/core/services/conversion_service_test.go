package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portssvc "github.com/vendornet/vendor_management_app/internal/core/ports/services"
	"github.com/vendornet/vendor_management_app/internal/core/services"
)

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExchangeRateRepository
	service  portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.service = services.NewConversionService(suite.mockRepo)
}

func storedRate(from, to, rate string) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ExchangeRateID:   from + to,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.RequireFromString(rate),
		AuditFields:      domain.AuditFields{LastUpdatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func rateNotFound(from, to string) error {
	return fmt.Errorf("%w: exchange rate %s to %s", apperrors.ErrNotFound, from, to)
}

// --- Test Cases ---

func (suite *ConversionServiceTestSuite) TestConvert_DirectRate() {
	ctx := context.Background()

	suite.mockRepo.On("FindExchangeRate", ctx, "USD", "EUR").Return(storedRate("USD", "EUR", "0.925"), nil).Once()

	result, err := suite.service.Convert(ctx, "100", "USD", "EUR", nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("100", result.OriginalAmount)
	suite.Equal("92.50", result.ConvertedAmount)
	suite.Equal("USD", result.FromCurrency)
	suite.Equal("EUR", result.ToCurrency)
	suite.Equal("0.925", result.Rate)
	suite.Equal(domain.RoundHalfUp, result.RoundingMode)
	suite.Equal(int32(2), result.DecimalPlaces)
	suite.Equal("$100", result.FormattedOriginal)
	suite.Equal("€92.50", result.FormattedConverted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_SameCurrencyShortCircuits() {
	ctx := context.Background()

	result, err := suite.service.Convert(ctx, "42.42", "USD", "usd", nil)

	suite.Require().NoError(err)
	suite.Equal("1", result.Rate)
	suite.Equal("42.42", result.ConvertedAmount)
	suite.WithinDuration(time.Now(), result.RateLastUpdated, time.Minute)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_CodesAreNormalized() {
	ctx := context.Background()

	suite.mockRepo.On("FindExchangeRate", ctx, "USD", "EUR").Return(storedRate("USD", "EUR", "0.925"), nil).Once()

	result, err := suite.service.Convert(ctx, "10", " usd ", "eur", nil)

	suite.Require().NoError(err)
	suite.Equal("USD", result.FromCurrency)
	suite.Equal("EUR", result.ToCurrency)
}

func (suite *ConversionServiceTestSuite) TestConvert_UnknownCurrencyNamesTheCode() {
	ctx := context.Background()

	result, err := suite.service.Convert(ctx, "100", "XYZ", "USD", nil)

	suite.Require().Error(err)
	suite.Nil(result)
	code, ok := apperrors.ConversionCode(err)
	suite.True(ok)
	suite.Equal(apperrors.CodeInvalidCurrency, code)
	suite.Contains(err.Error(), "XYZ")
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_InvalidAmount() {
	ctx := context.Background()

	result, err := suite.service.Convert(ctx, "not-a-number", "USD", "EUR", nil)

	suite.Require().Error(err)
	suite.Nil(result)
	code, ok := apperrors.ConversionCode(err)
	suite.True(ok)
	suite.Equal(apperrors.CodeInvalidAmount, code)
}

func (suite *ConversionServiceTestSuite) TestConvert_RateNotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindExchangeRate", ctx, "USD", "JPY").Return(nil, rateNotFound("USD", "JPY")).Once()

	result, err := suite.service.Convert(ctx, "100", "USD", "JPY", nil)

	suite.Require().Error(err)
	suite.Nil(result)
	code, ok := apperrors.ConversionCode(err)
	suite.True(ok)
	suite.Equal(apperrors.CodeRateNotFound, code)
}

func (suite *ConversionServiceTestSuite) TestConvert_RoundingModes() {
	ctx := context.Background()

	cases := []struct {
		mode     domain.RoundingMode
		amount   string
		expected string
	}{
		{domain.RoundHalfUp, "2.345", "2.35"},
		{domain.RoundHalfEven, "2.345", "2.34"},
		{domain.RoundDown, "2.349", "2.34"},
		{domain.RoundUp, "2.341", "2.35"},
	}
	for _, tc := range cases {
		opts := &domain.ConversionOptions{DecimalPlaces: 2, RoundingMode: tc.mode}
		result, err := suite.service.Convert(ctx, tc.amount, "USD", "USD", opts)
		suite.Require().NoError(err, "mode %s", tc.mode)
		suite.Equal(tc.expected, result.ConvertedAmount, "mode %s", tc.mode)
	}
}

func (suite *ConversionServiceTestSuite) TestConvert_RejectsUnknownRoundingMode() {
	ctx := context.Background()
	opts := &domain.ConversionOptions{DecimalPlaces: 2, RoundingMode: "CEILING"}

	result, err := suite.service.Convert(ctx, "100", "USD", "USD", opts)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ConversionServiceTestSuite) TestConvertWithFallback_UsesInverseRate() {
	ctx := context.Background()

	suite.mockRepo.On("FindExchangeRate", ctx, "USD", "GBP").Return(nil, rateNotFound("USD", "GBP")).Once()
	suite.mockRepo.On("FindExchangeRate", ctx, "GBP", "USD").Return(storedRate("GBP", "USD", "3"), nil).Once()

	result, err := suite.service.ConvertWithFallback(ctx, "3", "USD", "GBP", nil)

	suite.Require().NoError(err)
	// 1/3 carried to 20 digits, times 3, rounds back to 1.00.
	suite.Equal("1.00", result.ConvertedAmount)
	suite.Equal("0.33333333333333333333", result.Rate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvertWithFallback_BothDirectionsMissing() {
	ctx := context.Background()

	suite.mockRepo.On("FindExchangeRate", ctx, "USD", "JPY").Return(nil, rateNotFound("USD", "JPY")).Once()
	suite.mockRepo.On("FindExchangeRate", ctx, "JPY", "USD").Return(nil, rateNotFound("JPY", "USD")).Once()

	result, err := suite.service.ConvertWithFallback(ctx, "100", "USD", "JPY", nil)

	suite.Require().Error(err)
	suite.Nil(result)
	code, ok := apperrors.ConversionCode(err)
	suite.True(ok)
	suite.Equal(apperrors.CodeRateNotFound, code)
	suite.Contains(err.Error(), "either direction")
}

func (suite *ConversionServiceTestSuite) TestConvertWithFallback_ValidationErrorsDoNotFallBack() {
	ctx := context.Background()

	result, err := suite.service.ConvertWithFallback(ctx, "oops", "USD", "EUR", nil)

	suite.Require().Error(err)
	suite.Nil(result)
	code, _ := apperrors.ConversionCode(err)
	suite.Equal(apperrors.CodeInvalidAmount, code)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestBatchConvert_PreservesOrder() {
	ctx := context.Background()

	suite.mockRepo.On("FindExchangeRate", ctx, "EUR", "USD").Return(storedRate("EUR", "USD", "1.1"), nil).Once()

	items := []domain.ConversionItem{
		{Amount: "100", FromCurrency: "USD"},
		{Amount: "200", FromCurrency: "EUR"},
	}
	results, err := suite.service.BatchConvert(ctx, items, "USD", nil)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.Equal("100.00", results[0].ConvertedAmount)
	suite.Equal("220.00", results[1].ConvertedAmount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestBatchConvert_FirstFailureAbortsAndNamesItem() {
	ctx := context.Background()

	items := []domain.ConversionItem{
		{Amount: "100", FromCurrency: "USD"},
		{Amount: "200", FromCurrency: "XYZ"},
	}
	results, err := suite.service.BatchConvert(ctx, items, "USD", nil)

	suite.Require().Error(err)
	suite.Nil(results)
	suite.Contains(err.Error(), "batch item 1")
	code, ok := apperrors.ConversionCode(err)
	suite.True(ok)
	suite.Equal(apperrors.CodeInvalidCurrency, code)
}

func (suite *ConversionServiceTestSuite) TestCalculateTotal_SumsExactlyThenRoundsOnce() {
	ctx := context.Background()

	suite.mockRepo.On("FindExchangeRate", ctx, "EUR", "USD").Return(storedRate("EUR", "USD", "1.1"), nil).Once()

	items := []domain.ConversionItem{
		{Amount: "100", FromCurrency: "USD"},
		{Amount: "200", FromCurrency: "EUR"},
	}
	total, err := suite.service.CalculateTotal(ctx, items, "usd", nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(total)
	suite.Equal("USD", total.TargetCurrency)
	suite.Equal("320.00", total.Total)
	suite.Equal("$320.00", total.FormattedTotal)
	suite.Len(total.Conversions, 2)
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
