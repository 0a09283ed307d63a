package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// CreateInvoiceRequest defines the data needed to record a vendor invoice.
type CreateInvoiceRequest struct {
	VendorID           string           `json:"vendorID" binding:"required"`
	InvoiceNumber      string           `json:"invoiceNumber" binding:"required"`
	Amount             decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode       string           `json:"currencyCode" binding:"required,currencycode"`
	BillingPeriodStart time.Time        `json:"billingPeriodStart" binding:"required"`
	BillingPeriodEnd   time.Time        `json:"billingPeriodEnd" binding:"required"`
	ToleranceThreshold *decimal.Decimal `json:"toleranceThreshold,omitempty"`
}

// BatchValidateInvoicesRequest lists the invoices to validate.
type BatchValidateInvoicesRequest struct {
	InvoiceIDs []string `json:"invoiceIDs" binding:"required,min=1"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID          string           `json:"invoiceID"`
	VendorID           string           `json:"vendorID"`
	InvoiceNumber      string           `json:"invoiceNumber"`
	Amount             decimal.Decimal  `json:"amount"`
	CurrencyCode       string           `json:"currencyCode"`
	BillingPeriodStart time.Time        `json:"billingPeriodStart"`
	BillingPeriodEnd   time.Time        `json:"billingPeriodEnd"`
	ToleranceThreshold *decimal.Decimal `json:"toleranceThreshold,omitempty"`
	ExpectedAmount     *decimal.Decimal `json:"expectedAmount,omitempty"`
	Discrepancy        *decimal.Decimal `json:"discrepancy,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	LastUpdatedAt      time.Time        `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:          inv.InvoiceID,
		VendorID:           inv.VendorID,
		InvoiceNumber:      inv.InvoiceNumber,
		Amount:             inv.Amount,
		CurrencyCode:       inv.CurrencyCode,
		BillingPeriodStart: inv.BillingPeriodStart,
		BillingPeriodEnd:   inv.BillingPeriodEnd,
		CreatedAt:          inv.CreatedAt,
		LastUpdatedAt:      inv.LastUpdatedAt,
	}
	if inv.ToleranceThreshold.Valid {
		v := inv.ToleranceThreshold.Decimal
		resp.ToleranceThreshold = &v
	}
	if inv.ExpectedAmount.Valid {
		v := inv.ExpectedAmount.Decimal
		resp.ExpectedAmount = &v
	}
	if inv.Discrepancy.Valid {
		v := inv.Discrepancy.Decimal
		resp.Discrepancy = &v
	}
	return resp
}

// ToListInvoiceResponse converts a slice of domain.Invoice to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
