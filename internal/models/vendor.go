package models

import "database/sql"

// Vendor is the vendors table row.
type Vendor struct {
	VendorID string         `db:"vendor_id"`
	Name     string         `db:"name"`
	Phone    sql.NullString `db:"phone"`
	UserID   sql.NullString `db:"user_id"`
	IsActive bool           `db:"is_active"`
	AuditFields
}
