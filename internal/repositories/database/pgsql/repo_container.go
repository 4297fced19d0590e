package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/vendorkhata/vendor_khata_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository around one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PurchaseRepo:          newPgxPurchaseRepository(dbPool),
		VendorTransactionRepo: newPgxVendorTransactionRepository(dbPool),
		VendorRepo:            newPgxVendorRepository(dbPool),
		BranchRepo:            newPgxBranchRepository(dbPool),
		UserRepo:              newPgxUserRepository(dbPool),
	}
}
