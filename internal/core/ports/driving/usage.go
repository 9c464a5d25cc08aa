package driving

import (
	"context"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

// UsageService records and reports entrypoint usage.
type UsageService interface {
	// Record appends a transaction to the ledger.
	Record(ctx context.Context, tx domain.Transaction) error

	// Summary returns aggregate usage.
	Summary(ctx context.Context) (*domain.UsageSummary, error)

	// Transactions returns recent transactions, newest first.
	Transactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}
