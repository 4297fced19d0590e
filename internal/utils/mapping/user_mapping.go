package mapping

import (
	"database/sql"

	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	"github.com/vendorkhata/vendor_khata_app/internal/models"
)

// ToDomainUser converts a users row to the domain representation.
func ToDomainUser(m models.User) domain.User {
	u := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         domain.UserRole(m.Role),
		BranchName:   m.BranchName.String,
		VendorID:     m.VendorID.String,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		u.DeletedAt = &t
	}
	if m.RefreshTokenHash.Valid {
		u.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		u.RefreshTokenExpiryTime = &t
	}
	return u
}

// ToModelUser converts a domain user to a row.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Role:         string(d.Role),
		BranchName:   nullString(d.BranchName),
		VendorID:     nullString(d.VendorID),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.DeletedAt != nil {
		m.DeletedAt = sql.NullTime{Time: *d.DeletedAt, Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUserSlice converts a slice of users rows.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
