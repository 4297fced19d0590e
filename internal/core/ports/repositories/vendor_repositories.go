package repositories

import (
	"context"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// VendorRepositoryFacade defines persistence operations for vendors.
type VendorRepositoryFacade interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, includeInactive bool) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error
	DeactivateVendor(ctx context.Context, vendorID, updatedByUserID string) error
}
