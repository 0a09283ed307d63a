package repositories

import (
	"context"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// VendorReader defines read operations for vendor data
type VendorReader interface {
	// FindVendorByID retrieves a vendor by its ID.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves vendors with limit/offset pagination.
	ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	// SaveVendor persists a new vendor.
	SaveVendor(ctx context.Context, vendor domain.Vendor) error

	// UpdateVendor persists changes to an existing vendor.
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error
}

// VendorRepositoryFacade combines all vendor-related repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}
