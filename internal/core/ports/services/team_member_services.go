package services

import (
	"context"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// TeamMemberReaderSvc defines read operations for team member data
type TeamMemberReaderSvc interface {
	// GetTeamMemberByID retrieves a team member by its ID.
	GetTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error)

	// ListTeamMembersByVendor retrieves all of a vendor's team members.
	ListTeamMembersByVendor(ctx context.Context, vendorID string) ([]domain.TeamMember, error)
}

// TeamMemberWriterSvc defines write operations for team member data
type TeamMemberWriterSvc interface {
	// CreateTeamMember persists a new team member under a vendor.
	CreateTeamMember(ctx context.Context, vendorID string, req dto.CreateTeamMemberRequest, creatorUserID string) (*domain.TeamMember, error)

	// UpdateTeamMember applies partial updates to a team member.
	UpdateTeamMember(ctx context.Context, teamMemberID string, req dto.UpdateTeamMemberRequest, updaterUserID string) (*domain.TeamMember, error)

	// DeactivateTeamMember marks a team member INACTIVE so they stop
	// contributing to expected spend.
	DeactivateTeamMember(ctx context.Context, teamMemberID string, updaterUserID string) error
}

// TeamMemberSvcFacade combines all team member-related service interfaces
type TeamMemberSvcFacade interface {
	TeamMemberReaderSvc
	TeamMemberWriterSvc
}
