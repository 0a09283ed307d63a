package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// CreateTeamMemberRequest defines the data needed to add a team member to a vendor.
type CreateTeamMemberRequest struct {
	FirstName    string          `json:"firstName" binding:"required"`
	LastName     string          `json:"lastName" binding:"required"`
	DailyRate    decimal.Decimal `json:"dailyRate" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
}

// UpdateTeamMemberRequest defines the partially updatable team member fields.
type UpdateTeamMemberRequest struct {
	FirstName    *string          `json:"firstName,omitempty"`
	LastName     *string          `json:"lastName,omitempty"`
	DailyRate    *decimal.Decimal `json:"dailyRate,omitempty"`
	CurrencyCode *string          `json:"currencyCode,omitempty" binding:"omitempty,currencycode"`
	Status       *string          `json:"status,omitempty" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// TeamMemberResponse defines the data returned for a team member.
type TeamMemberResponse struct {
	TeamMemberID  string          `json:"teamMemberID"`
	VendorID      string          `json:"vendorID"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToTeamMemberResponse converts a domain.TeamMember to TeamMemberResponse DTO
func ToTeamMemberResponse(m *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		TeamMemberID:  m.TeamMemberID,
		VendorID:      m.VendorID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		DailyRate:     m.DailyRate,
		CurrencyCode:  m.CurrencyCode,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToListTeamMemberResponse converts a slice of domain.TeamMember to response DTOs.
func ToListTeamMemberResponse(members []domain.TeamMember) []TeamMemberResponse {
	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = ToTeamMemberResponse(&members[i])
	}
	return responses
}
