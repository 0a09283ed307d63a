package services

import (
	"context"
	"time"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// TimesheetReaderSvc defines read operations for timesheet data
type TimesheetReaderSvc interface {
	// ListEntriesForMember retrieves a member's entries within [start, end] inclusive.
	ListEntriesForMember(ctx context.Context, teamMemberID string, start, end time.Time) ([]domain.TimesheetEntry, error)
}

// TimesheetWriterSvc defines write operations for timesheet data
type TimesheetWriterSvc interface {
	// RecordEntry persists one day of work or absence for a team member.
	RecordEntry(ctx context.Context, req dto.RecordTimesheetEntryRequest, creatorUserID string) (*domain.TimesheetEntry, error)
}

// TimesheetSvcFacade combines all timesheet-related service interfaces
type TimesheetSvcFacade interface {
	TimesheetReaderSvc
	TimesheetWriterSvc
}
