package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/currency"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// TeamMemberService provides business logic for vendor team members.
type TeamMemberService struct {
	teamMemberRepo portsrepo.TeamMemberRepositoryFacade
	vendorRepo     portsrepo.VendorReader
}

// NewTeamMemberService creates a new TeamMemberService.
func NewTeamMemberService(teamMemberRepo portsrepo.TeamMemberRepositoryFacade, vendorRepo portsrepo.VendorReader) *TeamMemberService {
	return &TeamMemberService{teamMemberRepo: teamMemberRepo, vendorRepo: vendorRepo}
}

// CreateTeamMember adds an active team member under a vendor.
func (s *TeamMemberService) CreateTeamMember(ctx context.Context, vendorID string, req dto.CreateTeamMemberRequest, creatorUserID string) (*domain.TeamMember, error) {
	if req.DailyRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: daily rate must be positive", apperrors.ErrValidation)
	}
	if !currency.IsValidCurrencyCode(req.CurrencyCode) {
		return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, req.CurrencyCode)
	}

	if _, err := s.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: vendor %q not found", apperrors.ErrValidation, vendorID)
		}
		return nil, fmt.Errorf("failed to validate vendor %q: %w", vendorID, err)
	}

	now := time.Now()
	member := domain.TeamMember{
		TeamMemberID: uuid.NewString(),
		VendorID:     vendorID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DailyRate:    req.DailyRate,
		CurrencyCode: req.CurrencyCode,
		Status:       domain.TeamMemberActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.teamMemberRepo.SaveTeamMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member in service: %w", err)
	}
	return &member, nil
}

// GetTeamMemberByID retrieves a team member by its ID.
func (s *TeamMemberService) GetTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	member, err := s.teamMemberRepo.FindTeamMemberByID(ctx, teamMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member in service: %w", err)
	}
	return member, nil
}

// ListTeamMembersByVendor retrieves all of a vendor's team members.
func (s *TeamMemberService) ListTeamMembersByVendor(ctx context.Context, vendorID string) ([]domain.TeamMember, error) {
	members, err := s.teamMemberRepo.ListTeamMembersByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members in service: %w", err)
	}
	if members == nil {
		members = []domain.TeamMember{}
	}
	return members, nil
}

// UpdateTeamMember applies partial updates to a team member.
func (s *TeamMemberService) UpdateTeamMember(ctx context.Context, teamMemberID string, req dto.UpdateTeamMemberRequest, updaterUserID string) (*domain.TeamMember, error) {
	member, err := s.teamMemberRepo.FindTeamMemberByID(ctx, teamMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team member for update: %w", err)
	}

	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.DailyRate != nil {
		if req.DailyRate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: daily rate must be positive", apperrors.ErrValidation)
		}
		member.DailyRate = *req.DailyRate
	}
	if req.CurrencyCode != nil {
		if !currency.IsValidCurrencyCode(*req.CurrencyCode) {
			return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, *req.CurrencyCode)
		}
		member.CurrencyCode = *req.CurrencyCode
	}
	if req.Status != nil {
		member.Status = domain.TeamMemberStatus(*req.Status)
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = updaterUserID

	if err := s.teamMemberRepo.UpdateTeamMember(ctx, *member); err != nil {
		return nil, fmt.Errorf("failed to update team member in service: %w", err)
	}
	return member, nil
}

// DeactivateTeamMember marks a member INACTIVE so they stop contributing to
// expected spend from the next validation run onward.
func (s *TeamMemberService) DeactivateTeamMember(ctx context.Context, teamMemberID string, updaterUserID string) error {
	member, err := s.teamMemberRepo.FindTeamMemberByID(ctx, teamMemberID)
	if err != nil {
		return fmt.Errorf("failed to load team member for deactivation: %w", err)
	}
	member.Status = domain.TeamMemberInactive
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = updaterUserID

	if err := s.teamMemberRepo.UpdateTeamMember(ctx, *member); err != nil {
		return fmt.Errorf("failed to deactivate team member in service: %w", err)
	}
	return nil
}
