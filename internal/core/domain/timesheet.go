package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetEntry records one day of work (or absence) for a team member.
// Exactly one of Hours / TimeOffCode is expected to be set: an entry carrying
// a time-off code represents non-billable absence, not zero-hour work, and is
// excluded from billable-hours aggregation.
type TimesheetEntry struct {
	EntryID      string              `json:"entryID"`
	TeamMemberID string              `json:"teamMemberID"`
	EntryDate    time.Time           `json:"entryDate"`
	Hours        decimal.NullDecimal `json:"hours"`
	TimeOffCode  string              `json:"timeOffCode,omitempty"` // e.g. "PTO", "SICK"
	AuditFields
}

// IsBillable reports whether the entry contributes hours to expected spend.
func (e TimesheetEntry) IsBillable() bool {
	return e.TimeOffCode == "" && e.Hours.Valid
}
