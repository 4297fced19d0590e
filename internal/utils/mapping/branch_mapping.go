package mapping

import (
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/models"
)

// ToDomainBranch converts a branches row to the domain representation.
func ToDomainBranch(m models.Branch) domain.Branch {
	return domain.Branch{
		BranchID:    m.BranchID,
		Name:        m.Name,
		Address:     m.Address.String,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBranchSlice converts a slice of branches rows.
func ToDomainBranchSlice(ms []models.Branch) []domain.Branch {
	ds := make([]domain.Branch, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBranch(m)
	}
	return ds
}

// ToModelBranch converts a domain branch to a row.
func ToModelBranch(d domain.Branch) models.Branch {
	return models.Branch{
		BranchID:    d.BranchID,
		Name:        d.Name,
		Address:     nullString(d.Address),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
