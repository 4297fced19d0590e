package domain

import "time"

// UserRole determines what a user may see and do.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPERADMIN"
	RoleBranch     UserRole = "BRANCH"
	RoleVendor     UserRole = "VENDOR"
)

// User represents an application login. A BRANCH user is tied to one branch
// via BranchName; a VENDOR user is tied to one vendor via VendorID.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	BranchName   string   `json:"branchName,omitempty"`
	VendorID     string   `json:"vendorID,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// Refresh token fields; only the SHA-256 hash of the token is stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// GoogleUserInfo is the subset of the Google userinfo payload we consume
// during sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
