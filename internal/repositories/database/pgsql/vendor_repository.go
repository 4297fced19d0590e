package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portsrepo "github.com/vendorkhata/vendor_khata_app/internal/core/ports/repositories"
	"github.com/vendorkhata/vendor_khata_app/internal/models"
	"github.com/vendorkhata/vendor_khata_app/internal/utils/mapping"
)

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(db *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorColumns = `vendor_id, name, phone, user_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanVendor(row pgx.Row) (models.Vendor, error) {
	var m models.Vendor
	err := row.Scan(
		&m.VendorID,
		&m.Name,
		&m.Phone,
		&m.UserID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	query := `
        INSERT INTO vendors (` + vendorColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.VendorID,
		m.Name,
		m.Phone,
		m.UserID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save vendor: %w", err)
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`

	m, err := scanVendor(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by ID %s: %w", vendorID, err)
	}

	d := mapping.ToDomainVendor(m)
	return &d, nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context, includeInactive bool) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	var out []models.Vendor
	for rows.Next() {
		m, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vendor rows iteration error: %w", err)
	}

	return mapping.ToDomainVendorSlice(out), nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)
	query := `
        UPDATE vendors
        SET name = $2, phone = $3, user_id = $4, last_updated_at = $5, last_updated_by = $6
        WHERE vendor_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.VendorID,
		m.Name,
		m.Phone,
		m.UserID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVendorRepository) DeactivateVendor(ctx context.Context, vendorID, updatedByUserID string) error {
	query := `
        UPDATE vendors
        SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
        WHERE vendor_id = $1 AND is_active = TRUE;
    `
	tag, err := r.Pool.Exec(ctx, query, vendorID, time.Now(), updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to deactivate vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
