package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// CreatePurchaseRequest records a stock purchase from a vendor at a branch.
type CreatePurchaseRequest struct {
	VendorID   string          `json:"vendorID" binding:"required,uuid"`
	BranchName string          `json:"branchName" binding:"required,max=100"`
	ItemName   string          `json:"itemName" binding:"required,max=255"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Quantity   string          `json:"quantity" binding:"omitempty,max=100"`
	Notes      string          `json:"notes" binding:"omitempty,max=1000"`
	PhotoURL   string          `json:"photoUrl" binding:"omitempty,url,max=2048"`
	Date       *time.Time      `json:"date" binding:"omitempty"`
}

// PurchaseResponse is a recorded purchase as returned by the API.
type PurchaseResponse struct {
	PurchaseID string          `json:"purchaseID"`
	VendorID   string          `json:"vendorID"`
	BranchName string          `json:"branchName"`
	ItemName   string          `json:"itemName"`
	Price      decimal.Decimal `json:"price"`
	Quantity   string          `json:"quantity,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	PhotoURL   string          `json:"photoUrl,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}

// ListPurchasesResponse is a page of purchases with an opaque continuation token.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToPurchaseResponse converts a domain purchase to its response DTO.
func ToPurchaseResponse(p domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID: p.PurchaseID,
		VendorID:   p.VendorID,
		BranchName: p.BranchName,
		ItemName:   p.ItemName,
		Price:      p.Price,
		Quantity:   p.Quantity,
		Notes:      p.Notes,
		PhotoURL:   p.PhotoURL,
		CreatedAt:  p.CreatedAt,
		CreatedBy:  p.CreatedBy,
	}
}

// ToPurchaseResponses converts a slice of domain purchases.
func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		out[i] = ToPurchaseResponse(p)
	}
	return out
}

// UploadPhotoResponse is returned after a purchase photo upload.
type UploadPhotoResponse struct {
	PhotoURL     string `json:"photoUrl"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	ObjectKey    string `json:"objectKey"`
}
