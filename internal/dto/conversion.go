package dto

import (
	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// ConvertRequest defines a single currency conversion request.
// Amount is a decimal string; it is validated by the engine, not by binding,
// so that the INVALID_AMOUNT taxonomy applies uniformly.
type ConvertRequest struct {
	Amount        string `json:"amount" binding:"required"`
	FromCurrency  string `json:"fromCurrency" binding:"required,len=3"`
	ToCurrency    string `json:"toCurrency" binding:"required,len=3"`
	DecimalPlaces *int32 `json:"decimalPlaces,omitempty" binding:"omitempty,gte=0"`
	RoundingMode  string `json:"roundingMode,omitempty" binding:"omitempty,oneof=HALF_UP UP DOWN HALF_EVEN"`
}

// ConversionItemRequest is one element of a batch conversion request.
type ConversionItemRequest struct {
	Amount       string `json:"amount" binding:"required"`
	FromCurrency string `json:"fromCurrency" binding:"required,len=3"`
}

// BatchConvertRequest converts several amounts into one target currency.
type BatchConvertRequest struct {
	Items          []ConversionItemRequest `json:"items" binding:"required,min=1,dive"`
	TargetCurrency string                  `json:"targetCurrency" binding:"required,len=3"`
	DecimalPlaces  *int32                  `json:"decimalPlaces,omitempty" binding:"omitempty,gte=0"`
	RoundingMode   string                  `json:"roundingMode,omitempty" binding:"omitempty,oneof=HALF_UP UP DOWN HALF_EVEN"`
}

// Options assembles the engine options from the optional request fields,
// returning nil when the caller wants the defaults.
func (r ConvertRequest) Options() *domain.ConversionOptions {
	return buildOptions(r.DecimalPlaces, r.RoundingMode)
}

// Options assembles the engine options from the optional request fields.
func (r BatchConvertRequest) Options() *domain.ConversionOptions {
	return buildOptions(r.DecimalPlaces, r.RoundingMode)
}

// Domain converts the request items into engine value objects.
func (r BatchConvertRequest) Domain() []domain.ConversionItem {
	items := make([]domain.ConversionItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.ConversionItem{Amount: it.Amount, FromCurrency: it.FromCurrency}
	}
	return items
}

func buildOptions(places *int32, mode string) *domain.ConversionOptions {
	if places == nil && mode == "" {
		return nil
	}
	opts := domain.DefaultConversionOptions()
	if places != nil {
		opts.DecimalPlaces = *places
	}
	if mode != "" {
		opts.RoundingMode = domain.RoundingMode(mode)
	}
	return &opts
}
