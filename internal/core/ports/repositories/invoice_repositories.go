package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByVendor retrieves a vendor's invoices with pagination.
	ListInvoicesByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateValidationFields writes the derived validation fields back onto the
	// invoice row. Last-writer-wins; there is no optimistic concurrency check.
	UpdateValidationFields(ctx context.Context, invoiceID string, expectedAmount, discrepancy, toleranceThreshold decimal.Decimal, updatedBy string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
