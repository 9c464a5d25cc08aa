package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/ports/driven"
)

// Ensure UsageStore implements the interface.
var _ driven.UsageStore = (*UsageStore)(nil)

// UsageStore is an in-memory usage ledger. Transactions are lost on exit.
type UsageStore struct {
	mu  sync.RWMutex
	txs []domain.Transaction
}

// NewUsageStore creates a new in-memory usage store.
func NewUsageStore() *UsageStore {
	return &UsageStore{}
}

// Record appends a transaction.
func (s *UsageStore) Record(_ context.Context, tx domain.Transaction) error {
	if tx.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
	return nil
}

// List returns transactions newest first. Ties keep the later insert first.
func (s *UsageStore) List(_ context.Context, limit int) ([]domain.Transaction, error) {
	s.mu.RLock()
	out := make([]domain.Transaction, 0, len(s.txs))
	for i := len(s.txs) - 1; i >= 0; i-- {
		out = append(out, s.txs[i])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Summary aggregates all transactions.
func (s *UsageStore) Summary(_ context.Context) (*domain.UsageSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary := domain.NewUsageSummary()
	for _, tx := range s.txs {
		summary.Add(tx)
	}
	return summary, nil
}
