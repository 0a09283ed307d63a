package services

import (
	"context"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
	"github.com/vendornet/vendor_management_app/internal/dto"
)

// VendorReaderSvc defines read operations for vendor data
type VendorReaderSvc interface {
	// GetVendorByID retrieves a vendor by its ID.
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves vendors with pagination.
	ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error)
}

// VendorWriterSvc defines write operations for vendor data
type VendorWriterSvc interface {
	// CreateVendor persists a new vendor.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)

	// UpdateVendor applies partial updates to a vendor.
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error)

	// DeactivateVendor marks a vendor INACTIVE.
	DeactivateVendor(ctx context.Context, vendorID string, updaterUserID string) error
}

// VendorSvcFacade combines all vendor-related service interfaces
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}
