package pgsql

import (
	"context"
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

type PgxVendorTransactionRepository struct {
	BaseRepository
}

func newPgxVendorTransactionRepository(db *pgxpool.Pool) portsrepo.VendorTransactionRepositoryFacade {
	return &PgxVendorTransactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.VendorTransactionRepositoryFacade = (*PgxVendorTransactionRepository)(nil)

const vendorTransactionColumns = `transaction_id, vendor_id, branch_name, amount, comment, created_at, created_by`

func scanVendorTransaction(row pgx.Row) (models.VendorTransaction, error) {
	var m models.VendorTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.VendorID,
		&m.BranchName,
		&m.Amount,
		&m.Comment,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

func (r *PgxVendorTransactionRepository) SaveVendorTransaction(ctx context.Context, txn domain.VendorTransaction) error {
	m := mapping.ToModelVendorTransaction(txn)
	query := `
        INSERT INTO vendor_transactions (` + vendorTransactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.VendorID,
		m.BranchName,
		m.Amount,
		m.Comment,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save vendor transaction: %w", err)
	}
	return nil
}

// ListTransactionsForLedger returns every transaction for one (vendor,
// branch) pair. No pagination; the ledger consumes the whole stream.
func (r *PgxVendorTransactionRepository) ListTransactionsForLedger(ctx context.Context, vendorID, branchName string) ([]domain.VendorTransaction, error) {
	query := `
        SELECT ` + vendorTransactionColumns + `
        FROM vendor_transactions
        WHERE vendor_id = $1 AND branch_name = $2;
    `
	rows, err := r.Pool.Query(ctx, query, vendorID, branchName)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for ledger: %w", err)
	}
	defer rows.Close()

	return collectVendorTransactions(rows)
}

func (r *PgxVendorTransactionRepository) ListVendorTransactions(ctx context.Context, vendorID, branchName string, limit int, nextToken *string) ([]domain.VendorTransaction, *string, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conditions = append(conditions, "vendor_id = "+arg(vendorID))
	if branchName != "" {
		conditions = append(conditions, "branch_name = "+arg(branchName))
	}
	if nextToken != nil && *nextToken != "" {
		tokenDate, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		conditions = append(conditions, fmt.Sprintf("(created_at, transaction_id) < (%s, %s)", arg(tokenDate), arg(tokenID)))
	}

	query := `SELECT ` + vendorTransactionColumns + ` FROM vendor_transactions WHERE ` + strings.Join(conditions, " AND ")
	query += " ORDER BY created_at DESC, transaction_id DESC LIMIT " + arg(limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query vendor transactions: %w", err)
	}
	defer rows.Close()

	txns, err := collectVendorTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		next = &token
	}

	return txns, next, nil
}

func (r *PgxVendorTransactionRepository) DeleteVendorTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendor_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectVendorTransactions(rows pgx.Rows) ([]domain.VendorTransaction, error) {
	var out []models.VendorTransaction
	for rows.Next() {
		m, err := scanVendorTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor transaction row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vendor transaction rows iteration error: %w", err)
	}
	return mapping.ToDomainVendorTransactionSlice(out), nil
}
