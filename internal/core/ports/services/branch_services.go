package services

import (
	"context"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
)

// BranchSvcFacade defines branch management operations (super-admin only).
type BranchSvcFacade interface {
	CreateBranch(ctx context.Context, req dto.CreateBranchRequest, creatorUserID string) (*domain.Branch, error)
	GetBranchByName(ctx context.Context, name string) (*domain.Branch, error)
	ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error)
	DeactivateBranch(ctx context.Context, name, userID string) error
}
