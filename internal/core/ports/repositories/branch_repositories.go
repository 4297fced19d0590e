package repositories

import (
	"context"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// BranchRepositoryFacade defines persistence operations for branches.
type BranchRepositoryFacade interface {
	SaveBranch(ctx context.Context, branch domain.Branch) error
	FindBranchByName(ctx context.Context, name string) (*domain.Branch, error)
	ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error)
	DeactivateBranch(ctx context.Context, branchID, updatedByUserID string) error
}
