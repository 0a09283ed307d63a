package dto

import (
	"time"

	"github.com/vendornet/vendor_management_app/internal/core/domain"
)

// CreateVendorRequest defines the data needed to create a new vendor.
type CreateVendorRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
}

// UpdateVendorRequest defines the partially updatable vendor fields.
type UpdateVendorRequest struct {
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	CurrencyCode *string `json:"currencyCode,omitempty" binding:"omitempty,len=3"`
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID      string    `json:"vendorID"`
	Name          string    `json:"name"`
	ContactEmail  string    `json:"contactEmail,omitempty"`
	CurrencyCode  string    `json:"currencyCode"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse DTO
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:      v.VendorID,
		Name:          v.Name,
		ContactEmail:  v.ContactEmail,
		CurrencyCode:  v.CurrencyCode,
		Status:        string(v.Status),
		CreatedAt:     v.CreatedAt,
		CreatedBy:     v.CreatedBy,
		LastUpdatedAt: v.LastUpdatedAt,
		LastUpdatedBy: v.LastUpdatedBy,
	}
}

// ToListVendorResponse converts a slice of domain.Vendor to response DTOs.
func ToListVendorResponse(vendors []domain.Vendor) []VendorResponse {
	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = ToVendorResponse(&vendors[i])
	}
	return responses
}
