package services

import (
	"context"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
)

// PurchaseSvcFacade defines operations for recording and browsing purchases.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID, requestingUserID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, branchName, vendorID string, limit int, nextToken *string, requestingUserID string) ([]domain.Purchase, *string, error)
	DeletePurchase(ctx context.Context, purchaseID, requestingUserID string) error
}
