package repositories

import (
	"context"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// TeamMemberReader defines read operations for team member data
type TeamMemberReader interface {
	// FindTeamMemberByID retrieves a team member by its ID.
	FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error)

	// ListActiveTeamMembersByVendor retrieves all ACTIVE members for a vendor.
	ListActiveTeamMembersByVendor(ctx context.Context, vendorID string) ([]domain.TeamMember, error)

	// ListTeamMembersByVendor retrieves all members for a vendor regardless of status.
	ListTeamMembersByVendor(ctx context.Context, vendorID string) ([]domain.TeamMember, error)
}

// TeamMemberWriter defines write operations for team member data
type TeamMemberWriter interface {
	// SaveTeamMember persists a new team member.
	SaveTeamMember(ctx context.Context, member domain.TeamMember) error

	// UpdateTeamMember persists changes to an existing team member.
	UpdateTeamMember(ctx context.Context, member domain.TeamMember) error
}

// TeamMemberRepositoryFacade combines all team member-related repository interfaces
type TeamMemberRepositoryFacade interface {
	TeamMemberReader
	TeamMemberWriter
}
