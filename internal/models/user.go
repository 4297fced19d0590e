package models

import "database/sql"

// User is the users table row.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Role         string         `db:"role"`
	BranchName   sql.NullString `db:"branch_name"`
	VendorID     sql.NullString `db:"vendor_id"`
	AuditFields
	DeletedAt sql.NullTime `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
