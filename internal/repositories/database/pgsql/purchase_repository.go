package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendorkhata/vendor_khata_app/internal/apperrors"
	"github.com/vendorkhata/vendor_khata_app/internal/core/domain"
	portsrepo "github.com/vendorkhata/vendor_khata_app/internal/core/ports/repositories"
	"github.com/vendorkhata/vendor_khata_app/internal/models"
	"github.com/vendorkhata/vendor_khata_app/internal/utils/mapping"
	"github.com/vendorkhata/vendor_khata_app/internal/utils/pagination"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(db *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, vendor_id, branch_name, item_name, price, quantity, notes, photo_url, created_at, created_by`

func scanPurchase(row pgx.Row) (models.Purchase, error) {
	var m models.Purchase
	err := row.Scan(
		&m.PurchaseID,
		&m.VendorID,
		&m.BranchName,
		&m.ItemName,
		&m.Price,
		&m.Quantity,
		&m.Notes,
		&m.PhotoURL,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)
	query := `
        INSERT INTO purchases (` + purchaseColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.PurchaseID,
		m.VendorID,
		m.BranchName,
		m.ItemName,
		m.Price,
		m.Quantity,
		m.Notes,
		m.PhotoURL,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save purchase: %w", err)
	}
	return nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1;`

	m, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseID, err)
	}

	d := mapping.ToDomainPurchase(m)
	return &d, nil
}

// ListPurchasesForLedger returns every purchase for one (vendor, branch)
// pair. No pagination; the ledger consumes the whole stream.
func (r *PgxPurchaseRepository) ListPurchasesForLedger(ctx context.Context, vendorID, branchName string) ([]domain.Purchase, error) {
	query := `
        SELECT ` + purchaseColumns + `
        FROM purchases
        WHERE vendor_id = $1 AND branch_name = $2;
    `
	rows, err := r.Pool.Query(ctx, query, vendorID, branchName)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases for ledger: %w", err)
	}
	defer rows.Close()

	return collectPurchases(rows)
}

// ListPurchases returns purchases newest first with optional branch and
// vendor filters and keyset pagination on (created_at, purchase_id).
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, branchName, vendorID string, limit int, nextToken *string) ([]domain.Purchase, *string, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if branchName != "" {
		conditions = append(conditions, "branch_name = "+arg(branchName))
	}
	if vendorID != "" {
		conditions = append(conditions, "vendor_id = "+arg(vendorID))
	}
	if nextToken != nil && *nextToken != "" {
		tokenDate, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		conditions = append(conditions, fmt.Sprintf("(created_at, purchase_id) < (%s, %s)", arg(tokenDate), arg(tokenID)))
	}

	query := `SELECT ` + purchaseColumns + ` FROM purchases`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, purchase_id DESC LIMIT " + arg(limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases, err := collectPurchases(rows)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(purchases) > limit {
		purchases = purchases[:limit]
		last := purchases[len(purchases)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.PurchaseID)
		next = &token
	}

	return purchases, next, nil
}

func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectPurchases(rows pgx.Rows) ([]domain.Purchase, error) {
	var out []models.Purchase
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("purchase rows iteration error: %w", err)
	}
	return mapping.ToDomainPurchaseSlice(out), nil
}
