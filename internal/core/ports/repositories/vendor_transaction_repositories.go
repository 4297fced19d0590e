package repositories

import (
	"context"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// VendorTransactionReader defines read operations for vendor transactions.
type VendorTransactionReader interface {
	// ListTransactionsForLedger returns every transaction for one
	// (vendor, branch) pair, unpaginated, for ledger computation.
	ListTransactionsForLedger(ctx context.Context, vendorID, branchName string) ([]domain.VendorTransaction, error)

	// ListVendorTransactions returns transactions newest first with optional
	// branch filter and date-based pagination.
	ListVendorTransactions(ctx context.Context, vendorID, branchName string, limit int, nextToken *string) ([]domain.VendorTransaction, *string, error)
}

// VendorTransactionWriter defines write operations for vendor transactions.
type VendorTransactionWriter interface {
	SaveVendorTransaction(ctx context.Context, txn domain.VendorTransaction) error
	DeleteVendorTransaction(ctx context.Context, transactionID string) error
}

// VendorTransactionRepositoryFacade combines all vendor transaction
// repository operations.
type VendorTransactionRepositoryFacade interface {
	VendorTransactionReader
	VendorTransactionWriter
}
