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

type PgxBranchRepository struct {
	BaseRepository
}

func newPgxBranchRepository(db *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

const branchColumns = `branch_id, name, address, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBranch(row pgx.Row) (models.Branch, error) {
	var m models.Branch
	err := row.Scan(
		&m.BranchID,
		&m.Name,
		&m.Address,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	m := mapping.ToModelBranch(branch)
	query := `
        INSERT INTO branches (` + branchColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.BranchID,
		m.Name,
		m.Address,
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
		return fmt.Errorf("failed to save branch: %w", err)
	}
	return nil
}

func (r *PgxBranchRepository) FindBranchByName(ctx context.Context, name string) (*domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE name = $1;`

	m, err := scanBranch(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find branch by name %s: %w", name, err)
	}

	d := mapping.ToDomainBranch(m)
	return &d, nil
}

func (r *PgxBranchRepository) ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	var out []models.Branch
	for rows.Next() {
		m, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("branch rows iteration error: %w", err)
	}

	return mapping.ToDomainBranchSlice(out), nil
}

func (r *PgxBranchRepository) DeactivateBranch(ctx context.Context, branchID, updatedByUserID string) error {
	query := `
        UPDATE branches
        SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
        WHERE branch_id = $1 AND is_active = TRUE;
    `
	tag, err := r.Pool.Exec(ctx, query, branchID, time.Now(), updatedByUserID)
	if err != nil {
		return fmt.Errorf("failed to deactivate branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
