// Package ledger merges the two transaction streams of a (vendor, branch)
// pair, purchases and vendor transactions, into a single chronologically
// ordered ledger with a signed running balance.
//
// The computation is pure: no I/O, no shared state, no error paths. Both
// inputs must already be filtered to the target vendor and branch by the
// caller; filtering by identity is a storage concern.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
)

// Compute produces the merged ledger and balance for one (vendor, branch)
// pair.
//
//	balance = sum(purchase.Price) - sum(transaction.Amount)
//
// The transaction sum is signed, so a negative adjustment increases the
// balance owed to the vendor. Every input record yields exactly one line:
// purchases are classified "Purchase", transactions "Adjustment" when the
// amount is negative and "Payment" otherwise. Lines are sorted most recent
// first; the sort is stable, so records sharing a date keep a deterministic
// relative order. Inputs are never mutated.
func Compute(purchases []domain.Purchase, transactions []domain.VendorTransaction) domain.LedgerResult {
	lines := make([]domain.LedgerLine, 0, len(purchases)+len(transactions))

	totalPurchases := decimal.Zero
	for _, p := range purchases {
		totalPurchases = totalPurchases.Add(p.Price)
		lines = append(lines, domain.LedgerLine{
			SourceID:   p.PurchaseID,
			Type:       domain.LedgerPurchase,
			Date:       p.CreatedAt,
			Value:      p.Price,
			VendorID:   p.VendorID,
			BranchName: p.BranchName,
			ItemName:   p.ItemName,
			PhotoURL:   p.PhotoURL,
		})
	}

	totalPayments := decimal.Zero
	for _, t := range transactions {
		totalPayments = totalPayments.Add(t.Amount)
		entryType := domain.LedgerPayment
		if t.Amount.IsNegative() {
			entryType = domain.LedgerAdjustment
		}
		lines = append(lines, domain.LedgerLine{
			SourceID:   t.TransactionID,
			Type:       entryType,
			Date:       t.CreatedAt,
			Value:      t.Amount.Abs(),
			VendorID:   t.VendorID,
			BranchName: t.BranchName,
			Comment:    t.Comment,
		})
	}

	// Most recent first; zero dates (coerced from invalid input) end up last.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.After(lines[j].Date)
	})

	return domain.LedgerResult{
		Balance: totalPurchases.Sub(totalPayments),
		Ledger:  lines,
	}
}
