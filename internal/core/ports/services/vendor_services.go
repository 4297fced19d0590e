package services

import (
	"context"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/dto"
)

// VendorSvcFacade defines vendor management and vendor payment operations.
type VendorSvcFacade interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, includeInactive bool) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, userID string) (*domain.Vendor, error)
	DeactivateVendor(ctx context.Context, vendorID, userID string) error

	// RecordPayment stores a positive vendor transaction reducing the balance.
	RecordPayment(ctx context.Context, vendorID string, req dto.RecordPaymentRequest, userID string) (*domain.VendorTransaction, error)
	// RecordAdjustment stores a negative vendor transaction; the amount in
	// the request is positive and is negated on storage.
	RecordAdjustment(ctx context.Context, vendorID string, req dto.RecordAdjustmentRequest, userID string) (*domain.VendorTransaction, error)
	ListVendorTransactions(ctx context.Context, vendorID, branchName string, limit int, nextToken *string, requestingUserID string) ([]domain.VendorTransaction, *string, error)
}
