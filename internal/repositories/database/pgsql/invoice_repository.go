package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
)

// PgxInvoiceRepository implements the invoice repository using pgx
type PgxInvoiceRepository struct {
	BaseRepository
}

// NewPgxInvoiceRepository creates a new PgxInvoiceRepository
func NewPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, vendor_id, invoice_number, amount, currency_code, billing_period_start, billing_period_end, tolerance_threshold, expected_amount, discrepancy, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.VendorID,
		&inv.InvoiceNumber,
		&inv.Amount,
		&inv.CurrencyCode,
		&inv.BillingPeriodStart,
		&inv.BillingPeriodEnd,
		&inv.ToleranceThreshold,
		&inv.ExpectedAmount,
		&inv.Discrepancy,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`

	invoice, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}
	return invoice, nil
}

// ListInvoicesByVendor retrieves a vendor's invoices, newest billing period
// first, with limit/offset pagination.
func (r *PgxInvoiceRepository) ListInvoicesByVendor(ctx context.Context, vendorID string, limit, offset int) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE vendor_id = $1
		ORDER BY billing_period_start DESC, invoice_number
		LIMIT $2 OFFSET $3`

	rows, err := r.Pool.Query(ctx, query, vendorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}
	return invoices, nil
}

// SaveInvoice persists a new invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.VendorID,
		invoice.InvoiceNumber,
		invoice.Amount,
		invoice.CurrencyCode,
		invoice.BillingPeriodStart,
		invoice.BillingPeriodEnd,
		invoice.ToleranceThreshold,
		invoice.ExpectedAmount,
		invoice.Discrepancy,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

// UpdateValidationFields writes the derived validation fields back onto the
// invoice row. Last-writer-wins; concurrent validations of the same invoice
// simply overwrite each other.
func (r *PgxInvoiceRepository) UpdateValidationFields(ctx context.Context, invoiceID string, expectedAmount, discrepancy, toleranceThreshold decimal.Decimal, updatedBy string) error {
	query := `UPDATE invoices
		SET expected_amount = $2, discrepancy = $3, tolerance_threshold = $4,
			last_updated_at = NOW(), last_updated_by = $5
		WHERE invoice_id = $1`

	tag, err := r.Pool.Exec(ctx, query, invoiceID, expectedAmount, discrepancy, toleranceThreshold, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update invoice validation fields: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
	}
	return nil
}
