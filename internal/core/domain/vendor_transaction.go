package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorTransaction records money moved between a branch and a vendor.
// Sign convention: a positive Amount is a normal payment reducing what the
// branch owes; a negative Amount is an adjustment (correction or credit).
// This is the only place sign carries domain meaning.
type VendorTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	VendorID      string          `json:"vendorID"`
	BranchName    string          `json:"branchName"`
	Amount        decimal.Decimal `json:"amount"` // Signed
	Comment       string          `json:"comment,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// IsAdjustment reports whether this transaction is an adjustment rather than
// a normal payment.
func (t VendorTransaction) IsAdjustment() bool {
	return t.Amount.IsNegative()
}
