package domain

// VendorStatus represents the lifecycle state of a vendor.
type VendorStatus string

const (
	VendorActive   VendorStatus = "ACTIVE"
	VendorInactive VendorStatus = "INACTIVE"
)

// Vendor is a supplier organization that bills via invoices and staffs
// engagements with team members.
type Vendor struct {
	VendorID     string       `json:"vendorID"`
	Name         string       `json:"name"`
	ContactEmail string       `json:"contactEmail,omitempty"`
	CurrencyCode string       `json:"currencyCode"` // default billing currency
	Status       VendorStatus `json:"status"`
	AuditFields
}
