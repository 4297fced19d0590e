package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// CreateVendorRequest registers a new supplier.
type CreateVendorRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
}

// UpdateVendorRequest patches mutable vendor fields. Nil pointers are left
// unchanged.
type UpdateVendorRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=32"`
}

// RecordPaymentRequest records money paid out to a vendor against a branch's
// ledger.
type RecordPaymentRequest struct {
	BranchName string          `json:"branchName" binding:"required,max=100"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Comment    string          `json:"comment" binding:"omitempty,max=1000"`
	Date       *time.Time      `json:"date" binding:"omitempty"`
}

// RecordAdjustmentRequest records a correction that increases what is owed to
// the vendor. The amount is supplied positive and stored negated.
type RecordAdjustmentRequest struct {
	BranchName string          `json:"branchName" binding:"required,max=100"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Comment    string          `json:"comment" binding:"required,max=1000"`
	Date       *time.Time      `json:"date" binding:"omitempty"`
}

// VendorResponse is a vendor as returned by the API.
type VendorResponse struct {
	VendorID  string    `json:"vendorID"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	UserID    string    `json:"userID,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// VendorTransactionResponse is a payment or adjustment as returned by the API.
type VendorTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	VendorID      string          `json:"vendorID"`
	BranchName    string          `json:"branchName"`
	Amount        decimal.Decimal `json:"amount"`
	Comment       string          `json:"comment,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ListVendorTransactionsResponse is a page of vendor transactions.
type ListVendorTransactionsResponse struct {
	Transactions []VendorTransactionResponse `json:"transactions"`
	NextToken    *string                     `json:"nextToken,omitempty"`
}

// HasPositiveAmount reports whether the request amount is strictly positive.
func (r RecordPaymentRequest) HasPositiveAmount() bool {
	return r.Amount.IsPositive()
}

// HasPositiveAmount reports whether the request amount is strictly positive.
func (r RecordAdjustmentRequest) HasPositiveAmount() bool {
	return r.Amount.IsPositive()
}

// ToVendorResponse converts a domain vendor to its response DTO.
func ToVendorResponse(v domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:  v.VendorID,
		Name:      v.Name,
		Phone:     v.Phone,
		UserID:    v.UserID,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}

// ToVendorResponses converts a slice of domain vendors.
func ToVendorResponses(vendors []domain.Vendor) []VendorResponse {
	out := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		out[i] = ToVendorResponse(v)
	}
	return out
}

// ToVendorTransactionResponse converts a domain vendor transaction to its
// response DTO. The stored amount stays signed so callers can distinguish
// payments from adjustments.
func ToVendorTransactionResponse(t domain.VendorTransaction) VendorTransactionResponse {
	return VendorTransactionResponse{
		TransactionID: t.TransactionID,
		VendorID:      t.VendorID,
		BranchName:    t.BranchName,
		Amount:        t.Amount,
		Comment:       t.Comment,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
	}
}

// ToVendorTransactionResponses converts a slice of domain vendor transactions.
func ToVendorTransactionResponses(transactions []domain.VendorTransaction) []VendorTransactionResponse {
	out := make([]VendorTransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToVendorTransactionResponse(t)
	}
	return out
}
