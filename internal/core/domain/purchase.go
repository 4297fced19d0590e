package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records a good or service bought from a vendor at a branch.
// Price is always a positive cost owed to the vendor.
type Purchase struct {
	PurchaseID string          `json:"purchaseID"` // Primary key (UUID)
	VendorID   string          `json:"vendorID"`
	BranchName string          `json:"branchName"`
	ItemName   string          `json:"itemName"`
	Price      decimal.Decimal `json:"price"`
	Quantity   string          `json:"quantity,omitempty"` // Free-form, e.g. "2 boxes"
	Notes      string          `json:"notes,omitempty"`
	PhotoURL   string          `json:"photoUrl,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}
