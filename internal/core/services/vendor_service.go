package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vendornet/vendor_management_app/internal/apperrors"
	"github.com/vendornet/vendor_management_app/internal/core/currency"
	"github.com/vendornet/vendor_management_app/internal/core/domain"
	portsrepo "github.com/vendornet/vendor_management_app/internal/core/ports/repositories"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// VendorService provides business logic for vendors.
type VendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
}

// NewVendorService creates a new VendorService.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// CreateVendor registers a new active vendor.
func (s *VendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	if !currency.IsValidCurrencyCode(req.CurrencyCode) {
		return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, req.CurrencyCode)
	}

	now := time.Now()
	vendor := domain.Vendor{
		VendorID:     uuid.NewString(),
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		CurrencyCode: req.CurrencyCode,
		Status:       domain.VendorActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor in service: %w", err)
	}
	return &vendor, nil
}

// GetVendorByID retrieves a vendor by its ID.
func (s *VendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor in service: %w", err)
	}
	return vendor, nil
}

// ListVendors retrieves vendors with pagination.
func (s *VendorService) ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error) {
	if limit <= 0 {
		limit = 50
	}
	vendors, err := s.vendorRepo.ListVendors(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors in service: %w", err)
	}
	if vendors == nil {
		vendors = []domain.Vendor{}
	}
	return vendors, nil
}

// UpdateVendor applies partial updates to a vendor.
func (s *VendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor for update: %w", err)
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ContactEmail != nil {
		vendor.ContactEmail = *req.ContactEmail
	}
	if req.CurrencyCode != nil {
		if !currency.IsValidCurrencyCode(*req.CurrencyCode) {
			return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, *req.CurrencyCode)
		}
		vendor.CurrencyCode = *req.CurrencyCode
	}
	vendor.LastUpdatedAt = time.Now()
	vendor.LastUpdatedBy = updaterUserID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor in service: %w", err)
	}
	return vendor, nil
}

// DeactivateVendor marks a vendor INACTIVE. Its invoices and team members
// remain readable.
func (s *VendorService) DeactivateVendor(ctx context.Context, vendorID string, updaterUserID string) error {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("failed to load vendor for deactivation: %w", err)
	}
	vendor.Status = domain.VendorInactive
	vendor.LastUpdatedAt = time.Now()
	vendor.LastUpdatedBy = updaterUserID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		return fmt.Errorf("failed to deactivate vendor in service: %w", err)
	}
	return nil
}
