package driven

import (
	"context"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

// UsageStore persists the usage ledger.
type UsageStore interface {
	// Record appends a transaction.
	Record(ctx context.Context, tx domain.Transaction) error

	// List returns the most recent transactions, newest first.
	// A limit of zero or less returns all transactions.
	List(ctx context.Context, limit int) ([]domain.Transaction, error)

	// Summary aggregates every recorded transaction.
	Summary(ctx context.Context) (*domain.UsageSummary, error)
}
