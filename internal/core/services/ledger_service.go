package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/core/ledger"
	portsrepo "github.com/vendorkhata/vendor_khata_app/internal/core/ports/repositories"
	portssvc "github.com/vendorkhata/vendor_khata_app/internal/core/ports/services"
)

// ledgerService computes vendor ledgers from the purchase and transaction
// streams. The result is never cached; every call reads the current state.
type ledgerService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseReader
	txnRepo      portsrepo.VendorTransactionReader
}

// LedgerServiceOption is a functional option for configuring the ledger service.
type LedgerServiceOption func(*ledgerService)

// WithLedgerUserReader adds the user reader used for role-based scoping.
func WithLedgerUserReader(reader portssvc.UserReaderSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.UserReader = reader
	}
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(purchaseRepo portsrepo.PurchaseReader, txnRepo portsrepo.VendorTransactionReader, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		purchaseRepo: purchaseRepo,
		txnRepo:      txnRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// VendorLedger returns the merged, classified ledger for one (vendor, branch)
// pair. Purchases and transactions are fetched in parallel; either fetch
// failing fails the whole request.
func (s *ledgerService) VendorLedger(ctx context.Context, vendorID, branchName, requestingUserID string) (*domain.LedgerResult, error) {
	if err := s.AuthorizeVendorBranchAccess(ctx, requestingUserID, vendorID, branchName); err != nil {
		s.LogError(ctx, err, "User not authorized to view vendor ledger",
			slog.String("user_id", requestingUserID),
			slog.String("vendor_id", vendorID),
			slog.String("branch_name", branchName))
		return nil, err
	}

	var (
		purchases    []domain.Purchase
		transactions []domain.VendorTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		purchases, err = s.purchaseRepo.ListPurchasesForLedger(gctx, vendorID, branchName)
		if err != nil {
			return fmt.Errorf("failed to list purchases for ledger: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		transactions, err = s.txnRepo.ListTransactionsForLedger(gctx, vendorID, branchName)
		if err != nil {
			return fmt.Errorf("failed to list transactions for ledger: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Ledger fetch failed",
			slog.String("vendor_id", vendorID),
			slog.String("branch_name", branchName))
		return nil, err
	}

	result := ledger.Compute(purchases, transactions)

	s.LogDebug(ctx, "Computed vendor ledger",
		slog.String("vendor_id", vendorID),
		slog.String("branch_name", branchName),
		slog.Int("line_count", len(result.Ledger)),
		slog.String("balance", result.Balance.String()))

	return &result, nil
}
