package mapping

import (
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/models"
)

// ToDomainVendor converts a vendors row to the domain representation.
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:    m.VendorID,
		Name:        m.Name,
		Phone:       m.Phone.String,
		UserID:      m.UserID.String,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVendorSlice converts a slice of vendors rows.
func ToDomainVendorSlice(ms []models.Vendor) []domain.Vendor {
	ds := make([]domain.Vendor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVendor(m)
	}
	return ds
}

// ToModelVendor converts a domain vendor to a row.
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:    d.VendorID,
		Name:        d.Name,
		Phone:       nullString(d.Phone),
		UserID:      nullString(d.UserID),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
