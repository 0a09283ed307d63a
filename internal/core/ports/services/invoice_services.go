package services

import (
	"context"
	"time"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice by its ID.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByVendor retrieves a vendor's invoices with pagination.
	ListInvoicesByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new invoice for a vendor.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
}

// InvoiceValidatorSvc is the invoice validation engine contract.
type InvoiceValidatorSvc interface {
	// CalculateExpectedSpend sums active team members' billable hours in the
	// period into a vendor-level expected spend with per-member breakdown.
	CalculateExpectedSpend(ctx context.Context, vendorID string, periodStart, periodEnd time.Time) (*domain.ExpectedSpend, error)

	// ValidateInvoiceAgainstTimesheet compares an invoice's amount to expected
	// spend and writes the derived fields back onto the invoice record.
	// Returns (nil, nil) when the invoice does not exist; callers must check
	// for a nil result.
	ValidateInvoiceAgainstTimesheet(ctx context.Context, invoiceID string, validatorUserID string) (*domain.InvoiceValidationResult, error)

	// BatchValidateInvoices validates IDs sequentially, skipping any invoice
	// that was not found, and returns successful results in input order.
	BatchValidateInvoices(ctx context.Context, invoiceIDs []string, validatorUserID string) ([]domain.InvoiceValidationResult, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceValidatorSvc
}
