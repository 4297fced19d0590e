package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryType classifies a line in the merged vendor ledger.
type LedgerEntryType string

const (
	LedgerPurchase   LedgerEntryType = "Purchase"
	LedgerPayment    LedgerEntryType = "Payment"
	LedgerAdjustment LedgerEntryType = "Adjustment"
)

// LedgerLine is one row of the merged vendor ledger. It is derived from
// either a Purchase or a VendorTransaction and is never persisted.
// Value is the unsigned magnitude to display; the sign is conveyed by Type.
type LedgerLine struct {
	SourceID   string          `json:"sourceID"` // Purchase or transaction ID
	Type       LedgerEntryType `json:"ledgerType"`
	Date       time.Time       `json:"date"` // Sort key, the record's created_at
	Value      decimal.Decimal `json:"value"`
	VendorID   string          `json:"vendorID"`
	BranchName string          `json:"branchName"`
	ItemName   string          `json:"itemName,omitempty"` // Purchases only
	PhotoURL   string          `json:"photoUrl,omitempty"` // Purchases only
	Comment    string          `json:"comment,omitempty"`  // Transactions only
}

// LedgerResult is the computed ledger for one (vendor, branch) pair.
// A positive Balance means the vendor is owed money by the branch; zero or
// negative means settled or overpaid.
type LedgerResult struct {
	Balance decimal.Decimal `json:"balance"`
	Ledger  []LedgerLine    `json:"ledger"`
}
