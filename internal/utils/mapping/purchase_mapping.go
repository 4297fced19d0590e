package mapping

import (
	"database/sql"

	"github.com/shopspring/decimal"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/core/ledger"
	"github.com/vendorkhata/vendor_khata_app/internal/models"
)

// ToDomainPurchase converts a purchases row to the domain representation.
// Nullable price and timestamp columns go through the ledger coercion
// helpers so corrupt rows yield zero values instead of failing the read.
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID: m.PurchaseID,
		VendorID:   m.VendorID,
		BranchName: m.BranchName,
		ItemName:   m.ItemName,
		Price:      ledger.ParseMoney(m.Price),
		Quantity:   m.Quantity.String,
		Notes:      m.Notes.String,
		PhotoURL:   m.PhotoURL.String,
		CreatedAt:  models.NullTimeFrom(m.CreatedAt),
		CreatedBy:  m.CreatedBy,
	}
}

// ToDomainPurchaseSlice converts a slice of purchases rows.
func ToDomainPurchaseSlice(ms []models.Purchase) []domain.Purchase {
	ds := make([]domain.Purchase, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchase(m)
	}
	return ds
}

// ToModelPurchase converts a domain purchase to a row for persistence.
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID: d.PurchaseID,
		VendorID:   d.VendorID,
		BranchName: d.BranchName,
		ItemName:   d.ItemName,
		Price:      decimal.NullDecimal{Decimal: d.Price, Valid: true},
		Quantity:   nullString(d.Quantity),
		Notes:      nullString(d.Notes),
		PhotoURL:   nullString(d.PhotoURL),
		CreatedAt:  sql.NullTime{Time: d.CreatedAt, Valid: !d.CreatedAt.IsZero()},
		CreatedBy:  d.CreatedBy,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
