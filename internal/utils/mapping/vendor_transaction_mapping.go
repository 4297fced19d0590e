package mapping

import (
	"database/sql"

	"github.com/shopspring/decimal"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/core/ledger"
	"github.com/vendorkhata/vendor_khata_app/internal/models"
)

// ToDomainVendorTransaction converts a vendor_transactions row to the domain
// representation, coercing nullable columns.
func ToDomainVendorTransaction(m models.VendorTransaction) domain.VendorTransaction {
	return domain.VendorTransaction{
		TransactionID: m.TransactionID,
		VendorID:      m.VendorID,
		BranchName:    m.BranchName,
		Amount:        ledger.ParseMoney(m.Amount),
		Comment:       m.Comment.String,
		CreatedAt:     models.NullTimeFrom(m.CreatedAt),
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainVendorTransactionSlice converts a slice of vendor_transactions rows.
func ToDomainVendorTransactionSlice(ms []models.VendorTransaction) []domain.VendorTransaction {
	ds := make([]domain.VendorTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVendorTransaction(m)
	}
	return ds
}

// ToModelVendorTransaction converts a domain vendor transaction to a row.
func ToModelVendorTransaction(d domain.VendorTransaction) models.VendorTransaction {
	return models.VendorTransaction{
		TransactionID: d.TransactionID,
		VendorID:      d.VendorID,
		BranchName:    d.BranchName,
		Amount:        decimal.NullDecimal{Decimal: d.Amount, Valid: true},
		Comment:       nullString(d.Comment),
		CreatedAt:     sql.NullTime{Time: d.CreatedAt, Valid: !d.CreatedAt.IsZero()},
		CreatedBy:     d.CreatedBy,
	}
}
