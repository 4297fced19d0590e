package repositories

import (
	"context"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// PurchaseReader defines read operations for purchase records.
type PurchaseReader interface {
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchasesForLedger returns every purchase for one (vendor, branch)
	// pair, unpaginated. This is the filtered read the ledger engine consumes.
	ListPurchasesForLedger(ctx context.Context, vendorID, branchName string) ([]domain.Purchase, error)

	// ListPurchases returns purchases newest first. branchName and vendorID
	// are optional filters; nextToken is a date-based pagination token.
	ListPurchases(ctx context.Context, branchName, vendorID string, limit int, nextToken *string) ([]domain.Purchase, *string, error)
}

// PurchaseWriter defines write operations for purchase records.
type PurchaseWriter interface {
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase repository operations.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
