package domain

// Branch is a physical business location that purchases goods from vendors.
// Branch names are unique and used as the identity key on purchase and
// transaction rows, matching how the mobile client addresses branches.
type Branch struct {
	BranchID string `json:"branchID"` // Primary key (UUID)
	Name     string `json:"name"`     // Unique
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
