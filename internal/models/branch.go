package models

import "database/sql"

// Branch is the branches table row.
type Branch struct {
	BranchID string         `db:"branch_id"`
	Name     string         `db:"name"`
	Address  sql.NullString `db:"address"`
	IsActive bool           `db:"is_active"`
	AuditFields
}
