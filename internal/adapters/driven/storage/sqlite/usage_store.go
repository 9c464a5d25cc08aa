package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/ports/driven"
)

// usageStore implements driven.UsageStore.
type usageStore struct {
	db *sql.DB
}

var _ driven.UsageStore = (*usageStore)(nil)

// Record inserts a transaction.
func (s *usageStore) Record(ctx context.Context, tx domain.Transaction) error {
	if tx.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, entrypoint, price_micros, success, error, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		tx.ID,
		tx.Entrypoint,
		int64(tx.Price),
		boolToInt(tx.Success),
		nullString(tx.Error),
		tx.Duration.Nanoseconds(),
		tx.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

// List returns transactions newest first.
func (s *usageStore) List(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT id, entrypoint, price_micros, success, error, duration_ns, created_at
		FROM transactions
		ORDER BY created_at DESC, rowid DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// Summary aggregates the ledger per entrypoint in SQL.
func (s *usageStore) Summary(ctx context.Context) (*domain.UsageSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT entrypoint,
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN success = 1 THEN price_micros ELSE 0 END), 0)
		FROM transactions
		GROUP BY entrypoint
	`)
	if err != nil {
		return nil, fmt.Errorf("summarising transactions: %w", err)
	}
	defer rows.Close()

	summary := domain.NewUsageSummary()
	for rows.Next() {
		var (
			name    string
			u       domain.EntrypointUsage
			revenue int64
		)
		if err := rows.Scan(&name, &u.Calls, &u.Failed, &revenue); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		u.Revenue = domain.Price(revenue)

		summary.ByEntrypoint[name] = u
		summary.TotalCalls += u.Calls
		summary.FailedCalls += u.Failed
		summary.SuccessfulCalls += u.Calls - u.Failed
		summary.Revenue += u.Revenue
	}
	return summary, rows.Err()
}

func scanTransaction(rows *sql.Rows) (domain.Transaction, error) {
	var (
		tx         domain.Transaction
		price      int64
		success    int
		errMsg     sql.NullString
		durationNs int64
		createdAt  int64
	)
	if err := rows.Scan(&tx.ID, &tx.Entrypoint, &price, &success, &errMsg, &durationNs, &createdAt); err != nil {
		return tx, fmt.Errorf("scanning transaction: %w", err)
	}
	tx.Price = domain.Price(price)
	tx.Success = success == 1
	tx.Error = errMsg.String
	tx.Duration = time.Duration(durationNs)
	tx.CreatedAt = time.Unix(0, createdAt).UTC()
	return tx, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
