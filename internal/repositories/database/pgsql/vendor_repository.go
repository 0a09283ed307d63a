package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
)

// PgxVendorRepository implements the vendor repository using pgx
type PgxVendorRepository struct {
	BaseRepository
}

// NewPgxVendorRepository creates a new PgxVendorRepository
func NewPgxVendorRepository(pool *pgxpool.Pool) *PgxVendorRepository {
	return &PgxVendorRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorColumns = `vendor_id, name, contact_email, currency_code, status, created_at, created_by, last_updated_at, last_updated_by`

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	var v domain.Vendor
	err := row.Scan(
		&v.VendorID,
		&v.Name,
		&v.ContactEmail,
		&v.CurrencyCode,
		&v.Status,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindVendorByID retrieves a vendor by its ID.
func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1`

	vendor, err := scanVendor(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: vendor %s", apperrors.ErrNotFound, vendorID)
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	return vendor, nil
}

// ListVendors retrieves vendors ordered by name with limit/offset pagination.
func (r *PgxVendorRepository) ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors
		ORDER BY name
		LIMIT $1 OFFSET $2`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors := make([]domain.Vendor, 0)
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, *vendor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendors: %w", err)
	}
	return vendors, nil
}

// SaveVendor persists a new vendor.
func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.Pool.Exec(ctx, query,
		vendor.VendorID,
		vendor.Name,
		vendor.ContactEmail,
		vendor.CurrencyCode,
		vendor.Status,
		vendor.CreatedAt,
		vendor.CreatedBy,
		vendor.LastUpdatedAt,
		vendor.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vendor: %w", err)
	}
	return nil
}

// UpdateVendor persists changes to an existing vendor.
func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `UPDATE vendors
		SET name = $2, contact_email = $3, currency_code = $4, status = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE vendor_id = $1`

	tag, err := r.Pool.Exec(ctx, query,
		vendor.VendorID,
		vendor.Name,
		vendor.ContactEmail,
		vendor.CurrencyCode,
		vendor.Status,
		vendor.LastUpdatedAt,
		vendor.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: vendor %s", apperrors.ErrNotFound, vendor.VendorID)
	}
	return nil
}
