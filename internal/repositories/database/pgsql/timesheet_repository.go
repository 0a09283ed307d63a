package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
)

// PgxTimesheetRepository implements the timesheet repository using pgx
type PgxTimesheetRepository struct {
	BaseRepository
}

// NewPgxTimesheetRepository creates a new PgxTimesheetRepository
func NewPgxTimesheetRepository(pool *pgxpool.Pool) *PgxTimesheetRepository {
	return &PgxTimesheetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TimesheetRepositoryFacade = (*PgxTimesheetRepository)(nil)

const timesheetColumns = `entry_id, team_member_id, entry_date, hours, time_off_code, created_at, created_by, last_updated_at, last_updated_by`

func scanTimesheetEntry(row pgx.Row) (*domain.TimesheetEntry, error) {
	var e domain.TimesheetEntry
	var timeOffCode *string
	err := row.Scan(
		&e.EntryID,
		&e.TeamMemberID,
		&e.EntryDate,
		&e.Hours,
		&timeOffCode,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if timeOffCode != nil {
		e.TimeOffCode = *timeOffCode
	}
	return &e, nil
}

// ListEntriesForMembers retrieves all entries for the given members whose
// entry date falls within [start, end] inclusive.
func (r *PgxTimesheetRepository) ListEntriesForMembers(ctx context.Context, teamMemberIDs []string, start, end time.Time) ([]domain.TimesheetEntry, error) {
	if len(teamMemberIDs) == 0 {
		return []domain.TimesheetEntry{}, nil
	}

	query := `SELECT ` + timesheetColumns + ` FROM timesheet_entries
		WHERE team_member_id = ANY($1) AND entry_date BETWEEN $2 AND $3
		ORDER BY team_member_id, entry_date`

	return r.queryEntries(ctx, query, teamMemberIDs, start, end)
}

// ListEntriesForMember retrieves one member's entries within [start, end] inclusive.
func (r *PgxTimesheetRepository) ListEntriesForMember(ctx context.Context, teamMemberID string, start, end time.Time) ([]domain.TimesheetEntry, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheet_entries
		WHERE team_member_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date`

	return r.queryEntries(ctx, query, teamMemberID, start, end)
}

func (r *PgxTimesheetRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.TimesheetEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.TimesheetEntry, 0)
	for rows.Next() {
		entry, err := scanTimesheetEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timesheet entries: %w", err)
	}
	return entries, nil
}

// SaveEntry persists a new timesheet entry. An empty time-off code is stored
// as NULL so the column's partial uniqueness stays meaningful.
func (r *PgxTimesheetRepository) SaveEntry(ctx context.Context, entry domain.TimesheetEntry) error {
	query := `INSERT INTO timesheet_entries (` + timesheetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var timeOffCode *string
	if entry.TimeOffCode != "" {
		timeOffCode = &entry.TimeOffCode
	}

	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.TeamMemberID,
		entry.EntryDate,
		entry.Hours,
		timeOffCode,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save timesheet entry: %w", err)
	}
	return nil
}
