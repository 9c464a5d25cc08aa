package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/ports/driving"
	"github.com/custodia-labs/autodata/internal/logger"
)

// Handler runs an entrypoint on schema-valid input.
type Handler func(ctx context.Context, input json.RawMessage) (any, error)

// Entrypoint is a single named, priced operation.
type Entrypoint struct {
	Name         string
	Description  string
	DefaultPrice domain.Price
	Schema       *jsonschema.Schema

	resolved *jsonschema.Resolved
	handler  Handler
}

// Descriptor is the public view of an entrypoint.
type Descriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       string             `json:"price"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// Result is the envelope returned by every entrypoint.
type Result struct {
	Output any          `json:"output"`
	Price  domain.Price `json:"-"`
}

// Registry holds the entrypoints and their current prices.
type Registry struct {
	order  []*Entrypoint
	byName map[string]*Entrypoint

	mu     sync.RWMutex
	prices map[string]domain.Price

	usage driving.UsageService
	now   func() time.Time
}

// New builds the registry over the given services.
// usage may be nil, in which case the usage entrypoints report
// domain.ErrLedgerUnavailable and paid calls are not recorded.
func New(lookup driving.LookupService, usage driving.UsageService) (*Registry, error) {
	if lookup == nil {
		return nil, ErrMissingLookupService
	}

	r := &Registry{
		byName: make(map[string]*Entrypoint),
		prices: make(map[string]domain.Price),
		usage:  usage,
		now:    time.Now,
	}

	entrypoints, err := buildEntrypoints(lookup, usage)
	if err != nil {
		return nil, err
	}
	for _, e := range entrypoints {
		resolved, err := e.Schema.Resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("resolve schema for %s: %w", e.Name, err)
		}
		e.resolved = resolved
		r.order = append(r.order, e)
		r.byName[e.Name] = e
		r.prices[e.Name] = e.DefaultPrice
	}

	return r, nil
}

// List returns every entrypoint in registration order.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, e := range r.order {
		out = append(out, Descriptor{
			Name:        e.Name,
			Description: e.Description,
			Price:       r.prices[e.Name].Dollars(),
			InputSchema: e.Schema,
		})
	}
	return out
}

// Get returns the entrypoint registered under name.
func (r *Registry) Get(name string) (*Entrypoint, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Price returns the current price of an entrypoint.
func (r *Registry) Price(name string) (domain.Price, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prices[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownEntrypoint, name)
	}
	return p, nil
}

// SetPrices resets every price to its default and applies overrides.
// Overrides for unknown entrypoints are ignored.
func (r *Registry) SetPrices(overrides map[string]domain.Price) {
	prices := make(map[string]domain.Price, len(r.order))
	for _, e := range r.order {
		prices[e.Name] = e.DefaultPrice
	}
	for name, p := range overrides {
		if _, ok := prices[name]; !ok {
			logger.Warn("registry: ignoring price for unknown entrypoint %q", name)
			continue
		}
		prices[name] = p
	}

	r.mu.Lock()
	r.prices = prices
	r.mu.Unlock()
}

// Invoke validates input against the entrypoint schema, runs the handler
// and records the call when the entrypoint is paid. Validation failures
// wrap domain.ErrInvalidInput and are not recorded.
func (r *Registry) Invoke(ctx context.Context, name string, input json.RawMessage) (*Result, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEntrypoint, name)
	}

	if len(input) == 0 {
		input = json.RawMessage("{}")
	}
	if err := e.validate(input); err != nil {
		return nil, err
	}

	price, _ := r.Price(name)

	start := r.now()
	output, err := e.handler(ctx, input)
	elapsed := r.now().Sub(start)

	if !price.IsFree() {
		r.record(ctx, domain.Transaction{
			Entrypoint: name,
			Price:      price,
			Success:    err == nil,
			Error:      errorText(err),
			Duration:   elapsed,
			CreatedAt:  start,
		})
	}

	if err != nil {
		logger.Debug("registry: %s failed after %s: %v", name, elapsed, err)
		return nil, err
	}
	return &Result{Output: output, Price: price}, nil
}

// record writes tx to the ledger. Ledger failures never fail the call.
func (r *Registry) record(ctx context.Context, tx domain.Transaction) {
	if r.usage == nil {
		return
	}
	if err := r.usage.Record(ctx, tx); err != nil {
		logger.Error("registry: recording %s usage: %v", tx.Entrypoint, err)
	}
}

func (e *Entrypoint) validate(input json.RawMessage) error {
	var instance any
	if err := json.Unmarshal(input, &instance); err != nil {
		return fmt.Errorf("%w: %s: malformed JSON: %v", domain.ErrInvalidInput, e.Name, err)
	}
	if err := e.resolved.Validate(instance); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, e.Name, err)
	}
	return nil
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
