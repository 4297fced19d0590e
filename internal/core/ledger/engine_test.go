package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/core/ledger"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func purchase(id string, price string, createdAt time.Time) domain.Purchase {
	return domain.Purchase{
		PurchaseID: id,
		VendorID:   "vendor-1",
		BranchName: "main",
		ItemName:   "item-" + id,
		Price:      decimal.RequireFromString(price),
		CreatedAt:  createdAt,
	}
}

func transaction(id string, amount string, createdAt time.Time) domain.VendorTransaction {
	return domain.VendorTransaction{
		TransactionID: id,
		VendorID:      "vendor-1",
		BranchName:    "main",
		Amount:        decimal.RequireFromString(amount),
		CreatedAt:     createdAt,
	}
}

func TestCompute_PaymentAndPurchaseOrdering(t *testing.T) {
	purchases := []domain.Purchase{purchase("p1", "100", day("2024-01-02"))}
	transactions := []domain.VendorTransaction{transaction("t1", "40", day("2024-01-03"))}

	result := ledger.Compute(purchases, transactions)

	assert.True(t, result.Balance.Equal(decimal.NewFromInt(60)), "balance = %s", result.Balance)
	require.Len(t, result.Ledger, 2)

	// Payment is more recent, so it comes first.
	assert.Equal(t, domain.LedgerPayment, result.Ledger[0].Type)
	assert.True(t, result.Ledger[0].Value.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, domain.LedgerPurchase, result.Ledger[1].Type)
	assert.True(t, result.Ledger[1].Value.Equal(decimal.NewFromInt(100)))
}

func TestCompute_NegativeAmountIsAdjustment(t *testing.T) {
	transactions := []domain.VendorTransaction{transaction("t1", "-20", day("2024-01-01"))}

	result := ledger.Compute(nil, transactions)

	// A negative adjustment increases what the branch owes.
	assert.True(t, result.Balance.Equal(decimal.NewFromInt(20)), "balance = %s", result.Balance)
	require.Len(t, result.Ledger, 1)
	assert.Equal(t, domain.LedgerAdjustment, result.Ledger[0].Type)
	assert.True(t, result.Ledger[0].Value.Equal(decimal.NewFromInt(20)), "value is unsigned")
}

func TestCompute_EmptyInputs(t *testing.T) {
	result := ledger.Compute(nil, nil)

	assert.True(t, result.Balance.IsZero())
	assert.NotNil(t, result.Ledger)
	assert.Empty(t, result.Ledger)
}

func TestCompute_ExactDecimalSettlement(t *testing.T) {
	purchases := []domain.Purchase{purchase("p1", "150.50", day("2024-02-01"))}
	transactions := []domain.VendorTransaction{transaction("t1", "150.50", day("2024-02-02"))}

	result := ledger.Compute(purchases, transactions)

	assert.True(t, result.Balance.IsZero(), "balance = %s", result.Balance)
}

func TestCompute_ZeroPriceFromCoercedNull(t *testing.T) {
	// A null price coerces to zero upstream; the line still renders.
	purchases := []domain.Purchase{purchase("p1", "0", day("2024-03-01"))}

	result := ledger.Compute(purchases, nil)

	assert.True(t, result.Balance.IsZero())
	require.Len(t, result.Ledger, 1)
	assert.Equal(t, domain.LedgerPurchase, result.Ledger[0].Type)
	assert.True(t, result.Ledger[0].Value.IsZero())
}

func TestCompute_LineCountAndClassification(t *testing.T) {
	purchases := []domain.Purchase{
		purchase("p1", "10", day("2024-01-01")),
		purchase("p2", "20", day("2024-01-05")),
		purchase("p3", "30", day("2024-01-03")),
	}
	transactions := []domain.VendorTransaction{
		transaction("t1", "15", day("2024-01-02")),
		transaction("t2", "-5", day("2024-01-04")),
		transaction("t3", "0", day("2024-01-06")),
	}

	result := ledger.Compute(purchases, transactions)

	require.Len(t, result.Ledger, len(purchases)+len(transactions))

	counts := map[domain.LedgerEntryType]int{}
	for _, line := range result.Ledger {
		counts[line.Type]++
	}
	assert.Equal(t, 3, counts[domain.LedgerPurchase])
	// Zero amount classifies as Payment, not Adjustment.
	assert.Equal(t, 2, counts[domain.LedgerPayment])
	assert.Equal(t, 1, counts[domain.LedgerAdjustment])

	// 10 + 20 + 30 - (15 - 5 + 0) = 50
	assert.True(t, result.Balance.Equal(decimal.NewFromInt(50)), "balance = %s", result.Balance)
}

func TestCompute_SortDescendingWithZeroDatesLast(t *testing.T) {
	purchases := []domain.Purchase{
		purchase("p-old", "1", day("2023-06-01")),
		purchase("p-bad-date", "1", time.Time{}),
		purchase("p-new", "1", day("2024-06-01")),
	}
	transactions := []domain.VendorTransaction{
		transaction("t-mid", "1", day("2024-01-01")),
	}

	result := ledger.Compute(purchases, transactions)

	require.Len(t, result.Ledger, 4)
	for i := 1; i < len(result.Ledger); i++ {
		assert.False(t, result.Ledger[i].Date.After(result.Ledger[i-1].Date),
			"ledger[%d] is newer than ledger[%d]", i, i-1)
	}
	assert.Equal(t, "p-new", result.Ledger[0].SourceID)
	assert.Equal(t, "p-bad-date", result.Ledger[3].SourceID, "invalid dates sort oldest")
}

func TestCompute_StableOrderOnEqualDates(t *testing.T) {
	sameDay := day("2024-05-05")
	purchases := []domain.Purchase{
		purchase("p1", "1", sameDay),
		purchase("p2", "2", sameDay),
		purchase("p3", "3", sameDay),
	}

	first := ledger.Compute(purchases, nil)
	second := ledger.Compute(purchases, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, "p1", first.Ledger[0].SourceID)
	assert.Equal(t, "p2", first.Ledger[1].SourceID)
	assert.Equal(t, "p3", first.Ledger[2].SourceID)
}

func TestCompute_BalanceAdditiveInBothArguments(t *testing.T) {
	purchases := []domain.Purchase{
		purchase("p1", "12.25", day("2024-01-01")),
		purchase("p2", "7.75", day("2024-01-02")),
		purchase("p3", "100", day("2024-01-03")),
	}
	transactions := []domain.VendorTransaction{
		transaction("t1", "50", day("2024-01-04")),
		transaction("t2", "-10", day("2024-01-05")),
	}

	whole := ledger.Compute(purchases, transactions)

	// Balance equals the purchase-only balance minus the signed payment sum,
	// however the inputs are partitioned.
	sum := decimal.Zero
	for _, p := range purchases {
		partial := ledger.Compute([]domain.Purchase{p}, nil)
		sum = sum.Add(partial.Balance)
	}
	for _, txn := range transactions {
		partial := ledger.Compute(nil, []domain.VendorTransaction{txn})
		sum = sum.Add(partial.Balance)
	}
	assert.True(t, whole.Balance.Equal(sum), "whole=%s sum=%s", whole.Balance, sum)
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	purchases := []domain.Purchase{
		purchase("p2", "2", day("2024-01-02")),
		purchase("p1", "1", day("2024-01-01")),
	}
	transactions := []domain.VendorTransaction{
		transaction("t1", "-3", day("2024-01-03")),
	}
	origPurchases := append([]domain.Purchase(nil), purchases...)
	origTransactions := append([]domain.VendorTransaction(nil), transactions...)

	first := ledger.Compute(purchases, transactions)
	second := ledger.Compute(purchases, transactions)

	assert.Equal(t, origPurchases, purchases)
	assert.Equal(t, origTransactions, transactions)
	assert.Equal(t, first, second)
}
