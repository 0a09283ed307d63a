package repositories

import (
	"context"
	"time"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// TimesheetReader defines read operations for timesheet data
type TimesheetReader interface {
	// ListEntriesForMembers retrieves all entries for the given team members
	// whose entry date falls within [start, end] inclusive.
	ListEntriesForMembers(ctx context.Context, teamMemberIDs []string, start, end time.Time) ([]domain.TimesheetEntry, error)

	// ListEntriesForMember retrieves one member's entries within [start, end] inclusive.
	ListEntriesForMember(ctx context.Context, teamMemberID string, start, end time.Time) ([]domain.TimesheetEntry, error)
}

// TimesheetWriter defines write operations for timesheet data
type TimesheetWriter interface {
	// SaveEntry persists a new timesheet entry.
	SaveEntry(ctx context.Context, entry domain.TimesheetEntry) error
}

// TimesheetRepositoryFacade combines all timesheet-related repository interfaces
type TimesheetRepositoryFacade interface {
	TimesheetReader
	TimesheetWriter
}
