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

// PgxExchangeRateRepository implements the exchange rate repository using pgx
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository
func NewPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `exchange_rate_id, from_currency_code, to_currency_code, rate, created_at, created_by, last_updated_at, last_updated_by`

func scanExchangeRate(row pgx.Row) (*domain.ExchangeRate, error) {
	var r domain.ExchangeRate
	err := row.Scan(
		&r.ExchangeRateID,
		&r.FromCurrencyCode,
		&r.ToCurrencyCode,
		&r.Rate,
		&r.CreatedAt,
		&r.CreatedBy,
		&r.LastUpdatedAt,
		&r.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FindExchangeRate retrieves the rate for the ordered (from, to) pair.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2`

	rate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, fromCurrencyCode, toCurrencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: exchange rate %s to %s", apperrors.ErrNotFound, fromCurrencyCode, toCurrencyCode)
		}
		return nil, fmt.Errorf("failed to find exchange rate: %w", err)
	}
	return rate, nil
}

// ListExchangeRates retrieves all stored rates ordered by currency pair.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		ORDER BY from_currency_code, to_currency_code`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	defer rows.Close()

	rates := make([]domain.ExchangeRate, 0)
	for rows.Next() {
		rate, err := scanExchangeRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
		}
		rates = append(rates, *rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exchange rates: %w", err)
	}
	return rates, nil
}

// SaveExchangeRate inserts the rate, or updates it when the ordered pair
// already exists.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (from_currency_code, to_currency_code)
		DO UPDATE SET rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`

	_, err := r.Pool.Exec(ctx, query,
		rate.ExchangeRateID,
		rate.FromCurrencyCode,
		rate.ToCurrencyCode,
		rate.Rate,
		rate.CreatedAt,
		rate.CreatedBy,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange rate: %w", err)
	}
	return nil
}

// SaveExchangeRates upserts all rates within a single transaction so a
// partially applied batch never becomes visible.
func (r *PgxExchangeRateRepository) SaveExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	query := `INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (from_currency_code, to_currency_code)
		DO UPDATE SET rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`

	for _, rate := range rates {
		_, err := tx.Exec(ctx, query,
			rate.ExchangeRateID,
			rate.FromCurrencyCode,
			rate.ToCurrencyCode,
			rate.Rate,
			rate.CreatedAt,
			rate.CreatedBy,
			rate.LastUpdatedAt,
			rate.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save exchange rate %s to %s in batch: %w", rate.FromCurrencyCode, rate.ToCurrencyCode, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	return nil
}

// DeleteExchangeRate removes the rate for the ordered pair.
func (r *PgxExchangeRateRepository) DeleteExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) error {
	query := `DELETE FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2`

	tag, err := r.Pool.Exec(ctx, query, fromCurrencyCode, toCurrencyCode)
	if err != nil {
		return fmt.Errorf("failed to delete exchange rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: exchange rate %s to %s", apperrors.ErrNotFound, fromCurrencyCode, toCurrencyCode)
	}
	return nil
}
