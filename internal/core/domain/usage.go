package domain

import "time"

// Transaction is one recorded entrypoint invocation.
type Transaction struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`

	// Entrypoint is the name of the invoked entrypoint.
	Entrypoint string `json:"entrypoint"`

	// Price is the price tier in effect for the call.
	Price Price `json:"priceMicros"`

	// Success is false when the call failed.
	Success bool `json:"success"`

	// Error holds the failure message, if any.
	Error string `json:"error,omitempty"`

	// Duration is how long the call took.
	Duration time.Duration `json:"durationNs"`

	// CreatedAt is when the call started.
	CreatedAt time.Time `json:"createdAt"`
}

// EntrypointUsage aggregates transactions for a single entrypoint.
type EntrypointUsage struct {
	Calls   int   `json:"calls"`
	Failed  int   `json:"failed"`
	Revenue Price `json:"revenueMicros"`
}

// UsageSummary aggregates the whole ledger.
// Revenue counts successful calls only.
type UsageSummary struct {
	TotalCalls      int                        `json:"totalCalls"`
	SuccessfulCalls int                        `json:"successfulCalls"`
	FailedCalls     int                        `json:"failedCalls"`
	Revenue         Price                      `json:"revenueMicros"`
	ByEntrypoint    map[string]EntrypointUsage `json:"byEntrypoint"`
}

// NewUsageSummary returns an empty summary with its map allocated.
func NewUsageSummary() *UsageSummary {
	return &UsageSummary{ByEntrypoint: make(map[string]EntrypointUsage)}
}

// Add folds a transaction into the summary.
func (s *UsageSummary) Add(tx Transaction) {
	s.TotalCalls++
	u := s.ByEntrypoint[tx.Entrypoint]
	u.Calls++
	if tx.Success {
		s.SuccessfulCalls++
		s.Revenue += tx.Price
		u.Revenue += tx.Price
	} else {
		s.FailedCalls++
		u.Failed++
	}
	s.ByEntrypoint[tx.Entrypoint] = u
}
