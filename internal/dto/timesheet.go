package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// RecordTimesheetEntryRequest records one day of work or absence.
// Exactly one of Hours / TimeOffCode must be set; the service enforces this.
type RecordTimesheetEntryRequest struct {
	TeamMemberID string           `json:"teamMemberID" binding:"required"`
	EntryDate    time.Time        `json:"entryDate" binding:"required"`
	Hours        *decimal.Decimal `json:"hours,omitempty"`
	TimeOffCode  string           `json:"timeOffCode,omitempty"`
}

// TimesheetEntryResponse defines the data returned for a timesheet entry.
type TimesheetEntryResponse struct {
	EntryID      string           `json:"entryID"`
	TeamMemberID string           `json:"teamMemberID"`
	EntryDate    time.Time        `json:"entryDate"`
	Hours        *decimal.Decimal `json:"hours,omitempty"`
	TimeOffCode  string           `json:"timeOffCode,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ToTimesheetEntryResponse converts a domain.TimesheetEntry to its response DTO
func ToTimesheetEntryResponse(e *domain.TimesheetEntry) TimesheetEntryResponse {
	resp := TimesheetEntryResponse{
		EntryID:      e.EntryID,
		TeamMemberID: e.TeamMemberID,
		EntryDate:    e.EntryDate,
		TimeOffCode:  e.TimeOffCode,
		CreatedAt:    e.CreatedAt,
	}
	if e.Hours.Valid {
		hours := e.Hours.Decimal
		resp.Hours = &hours
	}
	return resp
}

// ToListTimesheetEntryResponse converts a slice of entries to response DTOs.
func ToListTimesheetEntryResponse(entries []domain.TimesheetEntry) []TimesheetEntryResponse {
	responses := make([]TimesheetEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToTimesheetEntryResponse(&entries[i])
	}
	return responses
}
