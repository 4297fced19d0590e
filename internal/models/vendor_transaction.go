package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// VendorTransaction is the vendor_transactions table row. Amount is signed;
// negative amounts are adjustments.
type VendorTransaction struct {
	TransactionID string              `db:"transaction_id"`
	VendorID      string              `db:"vendor_id"`
	BranchName    string              `db:"branch_name"`
	Amount        decimal.NullDecimal `db:"amount"`
	Comment       sql.NullString      `db:"comment"`
	CreatedAt     sql.NullTime        `db:"created_at"`
	CreatedBy     string              `db:"created_by"`
}
