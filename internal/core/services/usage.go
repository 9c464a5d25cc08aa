package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/ports/driven"
	"github.com/custodia-labs/autodata/internal/core/ports/driving"
)

// Ensure UsageService implements the interface.
var _ driving.UsageService = (*UsageService)(nil)

// DefaultTransactionLimit is used when Transactions is called with limit <= 0.
const DefaultTransactionLimit = 50

// UsageService records and reports entrypoint usage.
type UsageService struct {
	store driven.UsageStore
	now   func() time.Time
}

// NewUsageService creates a new usage service.
func NewUsageService(store driven.UsageStore) *UsageService {
	return &UsageService{store: store, now: time.Now}
}

// Record stores tx, assigning an ID and timestamp when missing.
func (s *UsageService) Record(ctx context.Context, tx domain.Transaction) error {
	if tx.Entrypoint == "" {
		return fmt.Errorf("%w: entrypoint name required", domain.ErrInvalidInput)
	}
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = s.now()
	}
	if err := s.store.Record(ctx, tx); err != nil {
		return fmt.Errorf("record %s transaction: %w", tx.Entrypoint, err)
	}
	return nil
}

// Summary returns aggregate usage.
func (s *UsageService) Summary(ctx context.Context) (*domain.UsageSummary, error) {
	summary, err := s.store.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("usage summary: %w", err)
	}
	return summary, nil
}

// Transactions returns up to limit recent transactions, newest first.
func (s *UsageService) Transactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	txs, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}
