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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, password_hash, name, role, branch_name, vendor_id, created_at, created_by, last_updated_at, last_updated_by, deleted_at, refresh_token_hash, refresh_token_expiry_time`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.Name,
		&m.Role,
		&m.BranchName,
		&m.VendorID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (user_id, username, password_hash, name, role, branch_name, vendor_id, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.PasswordHash,
		m.Name,
		m.Role,
		m.BranchName,
		m.VendorID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	d := mapping.ToDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL;`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	d := mapping.ToDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE deleted_at IS NULL
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user rows iteration error: %w", err)
	}

	return mapping.ToDomainUserSlice(out), nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        UPDATE users
        SET password_hash = $2, name = $3, role = $4, branch_name = $5, vendor_id = $6, last_updated_at = $7, last_updated_by = $8
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.PasswordHash,
		m.Name,
		m.Role,
		m.BranchName,
		m.VendorID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID, deletedByUserID string) error {
	now := time.Now()
	query := `
        UPDATE users
        SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.Pool.Exec(ctx, query, userID, now, deletedByUserID)
	if err != nil {
		return fmt.Errorf("failed to mark user deleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error {
	query := `
        UPDATE users
        SET refresh_token_hash = $2, refresh_token_expiry_time = $3, last_updated_at = $4
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.Pool.Exec(ctx, query, userID, tokenHash, expiresAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
