package services

import (
	"context"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// LedgerSvcFacade exposes the vendor ledger computation to the transport
// layer. The result is recomputed fresh on every call; there is no cache.
type LedgerSvcFacade interface {
	// VendorLedger fetches the purchase and transaction streams for one
	// (vendor, branch) pair and returns the merged, classified ledger with
	// its running balance. requestingUserID is used for role-based scoping:
	// branch users may only query their own branch, vendor users only their
	// own vendor.
	VendorLedger(ctx context.Context, vendorID, branchName, requestingUserID string) (*domain.LedgerResult, error)
}
