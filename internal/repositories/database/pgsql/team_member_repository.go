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

// PgxTeamMemberRepository implements the team member repository using pgx
type PgxTeamMemberRepository struct {
	BaseRepository
}

// NewPgxTeamMemberRepository creates a new PgxTeamMemberRepository
func NewPgxTeamMemberRepository(pool *pgxpool.Pool) *PgxTeamMemberRepository {
	return &PgxTeamMemberRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TeamMemberRepositoryFacade = (*PgxTeamMemberRepository)(nil)

const teamMemberColumns = `team_member_id, vendor_id, first_name, last_name, daily_rate, currency_code, status, created_at, created_by, last_updated_at, last_updated_by`

func scanTeamMember(row pgx.Row) (*domain.TeamMember, error) {
	var m domain.TeamMember
	err := row.Scan(
		&m.TeamMemberID,
		&m.VendorID,
		&m.FirstName,
		&m.LastName,
		&m.DailyRate,
		&m.CurrencyCode,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindTeamMemberByID retrieves a team member by its ID.
func (r *PgxTeamMemberRepository) FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE team_member_id = $1`

	member, err := scanTeamMember(r.Pool.QueryRow(ctx, query, teamMemberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: team member %s", apperrors.ErrNotFound, teamMemberID)
		}
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}
	return member, nil
}

// ListActiveTeamMembersByVendor retrieves all ACTIVE members for a vendor.
func (r *PgxTeamMemberRepository) ListActiveTeamMembersByVendor(ctx context.Context, vendorID string) ([]domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members
		WHERE vendor_id = $1 AND status = $2
		ORDER BY last_name, first_name`

	return r.queryTeamMembers(ctx, query, vendorID, domain.TeamMemberActive)
}

// ListTeamMembersByVendor retrieves all members for a vendor regardless of status.
func (r *PgxTeamMemberRepository) ListTeamMembersByVendor(ctx context.Context, vendorID string) ([]domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members
		WHERE vendor_id = $1
		ORDER BY last_name, first_name`

	return r.queryTeamMembers(ctx, query, vendorID)
}

func (r *PgxTeamMemberRepository) queryTeamMembers(ctx context.Context, query string, args ...any) ([]domain.TeamMember, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team members: %w", err)
	}
	return members, nil
}

// SaveTeamMember persists a new team member.
func (r *PgxTeamMemberRepository) SaveTeamMember(ctx context.Context, member domain.TeamMember) error {
	query := `INSERT INTO team_members (` + teamMemberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.Pool.Exec(ctx, query,
		member.TeamMemberID,
		member.VendorID,
		member.FirstName,
		member.LastName,
		member.DailyRate,
		member.CurrencyCode,
		member.Status,
		member.CreatedAt,
		member.CreatedBy,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save team member: %w", err)
	}
	return nil
}

// UpdateTeamMember persists changes to an existing team member.
func (r *PgxTeamMemberRepository) UpdateTeamMember(ctx context.Context, member domain.TeamMember) error {
	query := `UPDATE team_members
		SET first_name = $2, last_name = $3, daily_rate = $4, currency_code = $5,
			status = $6, last_updated_at = $7, last_updated_by = $8
		WHERE team_member_id = $1`

	tag, err := r.Pool.Exec(ctx, query,
		member.TeamMemberID,
		member.FirstName,
		member.LastName,
		member.DailyRate,
		member.CurrencyCode,
		member.Status,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: team member %s", apperrors.ErrNotFound, member.TeamMemberID)
	}
	return nil
}
