package dto

import (
	"time"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// CreateBranchRequest registers a new shop branch. The branch name is the
// identity key used across purchases and transactions.
type CreateBranchRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"omitempty,max=1000"`
}

// BranchResponse is a branch as returned by the API.
type BranchResponse struct {
	BranchID  string    `json:"branchID"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToBranchResponse converts a domain branch to its response DTO.
func ToBranchResponse(b domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID:  b.BranchID,
		Name:      b.Name,
		Address:   b.Address,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

// ToBranchResponses converts a slice of domain branches.
func ToBranchResponses(branches []domain.Branch) []BranchResponse {
	out := make([]BranchResponse, len(branches))
	for i, b := range branches {
		out[i] = ToBranchResponse(b)
	}
	return out
}
