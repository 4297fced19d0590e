package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the purchases table row. Price and several descriptive fields
// are nullable in the store; they are coerced at the mapping boundary.
type Purchase struct {
	PurchaseID string              `db:"purchase_id"`
	VendorID   string              `db:"vendor_id"`
	BranchName string              `db:"branch_name"`
	ItemName   string              `db:"item_name"`
	Price      decimal.NullDecimal `db:"price"`
	Quantity   sql.NullString      `db:"quantity"`
	Notes      sql.NullString      `db:"notes"`
	PhotoURL   sql.NullString      `db:"photo_url"`
	CreatedAt  sql.NullTime        `db:"created_at"`
	CreatedBy  string              `db:"created_by"`
}

// NullTimeFrom converts a nullable store timestamp to a plain time.Time,
// zero when absent.
func NullTimeFrom(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}
