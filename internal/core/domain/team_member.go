package domain

import "github.com/shopspring/decimal"

// TeamMemberStatus represents whether a team member is currently staffed.
type TeamMemberStatus string

const (
	TeamMemberActive   TeamMemberStatus = "ACTIVE"
	TeamMemberInactive TeamMemberStatus = "INACTIVE"
)

// TeamMember is a billable person supplied by a vendor. DailyRate is the
// amount billed for a full 8-hour working day.
type TeamMember struct {
	TeamMemberID string           `json:"teamMemberID"`
	VendorID     string           `json:"vendorID"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	DailyRate    decimal.Decimal  `json:"dailyRate"`
	CurrencyCode string           `json:"currencyCode"`
	Status       TeamMemberStatus `json:"status"`
	AuditFields
}

// FullName returns the member's display name.
func (m TeamMember) FullName() string {
	return m.FirstName + " " + m.LastName
}
