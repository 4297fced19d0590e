package domain

// Vendor is a supplier a branch buys goods from. Vendors may optionally have
// a login of their own (UserID) to view their ledger.
type Vendor struct {
	VendorID string `json:"vendorID"` // Primary key (UUID)
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	UserID   string `json:"userID,omitempty"` // Nullable link to a VENDOR-role login
	IsActive bool   `json:"isActive"`
	AuditFields
}
