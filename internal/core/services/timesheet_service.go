package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// maxHoursPerDay caps a single timesheet entry.
var maxHoursPerDay = decimal.NewFromInt(24)

// TimesheetService provides business logic for timesheet entries.
type TimesheetService struct {
	timesheetRepo  portsrepo.TimesheetRepositoryFacade
	teamMemberRepo portsrepo.TeamMemberReader
}

// NewTimesheetService creates a new TimesheetService.
func NewTimesheetService(timesheetRepo portsrepo.TimesheetRepositoryFacade, teamMemberRepo portsrepo.TeamMemberReader) *TimesheetService {
	return &TimesheetService{timesheetRepo: timesheetRepo, teamMemberRepo: teamMemberRepo}
}

// RecordEntry persists one day of work or absence for a team member.
// An entry carries either hours or a time-off code, never both.
func (s *TimesheetService) RecordEntry(ctx context.Context, req dto.RecordTimesheetEntryRequest, creatorUserID string) (*domain.TimesheetEntry, error) {
	hasHours := req.Hours != nil
	hasTimeOff := req.TimeOffCode != ""
	if hasHours == hasTimeOff {
		return nil, fmt.Errorf("%w: exactly one of hours or timeOffCode must be set", apperrors.ErrValidation)
	}
	if hasHours {
		if req.Hours.IsNegative() {
			return nil, fmt.Errorf("%w: hours must not be negative", apperrors.ErrValidation)
		}
		if req.Hours.GreaterThan(maxHoursPerDay) {
			return nil, fmt.Errorf("%w: hours must not exceed 24 per day", apperrors.ErrValidation)
		}
	}

	if _, err := s.teamMemberRepo.FindTeamMemberByID(ctx, req.TeamMemberID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: team member %q not found", apperrors.ErrValidation, req.TeamMemberID)
		}
		return nil, fmt.Errorf("failed to validate team member %q: %w", req.TeamMemberID, err)
	}

	now := time.Now()
	entry := domain.TimesheetEntry{
		EntryID:      uuid.NewString(),
		TeamMemberID: req.TeamMemberID,
		EntryDate:    req.EntryDate,
		TimeOffCode:  req.TimeOffCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if hasHours {
		entry.Hours = decimal.NewNullDecimal(*req.Hours)
	}

	if err := s.timesheetRepo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record timesheet entry in service: %w", err)
	}
	return &entry, nil
}

// ListEntriesForMember retrieves a member's entries within [start, end] inclusive.
func (s *TimesheetService) ListEntriesForMember(ctx context.Context, teamMemberID string, start, end time.Time) ([]domain.TimesheetEntry, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end must not precede its start", apperrors.ErrValidation)
	}
	entries, err := s.timesheetRepo.ListEntriesForMember(ctx, teamMemberID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries in service: %w", err)
	}
	if entries == nil {
		entries = []domain.TimesheetEntry{}
	}
	return entries, nil
}
