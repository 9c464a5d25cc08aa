package registry

import (
	"context"
	"sync"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

// mockLookupService records calls and returns scripted results.
type mockLookupService struct {
	mu    sync.Mutex
	calls []string
	args  [][]string
	err   error
}

func (m *mockLookupService) record(name string, args ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	m.args = append(m.args, args)
}

func (m *mockLookupService) Identify(_ context.Context, vin string) (*domain.Identification, error) {
	m.record("Identify", vin)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Identification{VIN: vin, IsValid: true, Spec: domain.CleanedSpec{}}, nil
}

func (m *mockLookupService) RecallsByVIN(_ context.Context, vin string) (*domain.RecallReport, error) {
	m.record("RecallsByVIN", vin)
	return &domain.RecallReport{VIN: vin, Recalls: []domain.RecallRecord{}}, m.err
}

func (m *mockLookupService) RecallsByVehicle(
	_ context.Context, makeName, model, modelYear string,
) (*domain.RecallReport, error) {
	m.record("RecallsByVehicle", makeName, model, modelYear)
	return &domain.RecallReport{Recalls: []domain.RecallRecord{}}, m.err
}

func (m *mockLookupService) ModelsForMake(_ context.Context, makeName string) (*domain.ModelCatalog, error) {
	m.record("ModelsForMake", makeName)
	return &domain.ModelCatalog{Make: makeName, Models: []string{}}, m.err
}

func (m *mockLookupService) Makes(_ context.Context) (*domain.MakeCatalog, error) {
	m.record("Makes")
	return &domain.MakeCatalog{Makes: []domain.Make{}}, m.err
}

func (m *mockLookupService) Complaints(
	_ context.Context, makeName, model, modelYear string,
) (*domain.ComplaintReport, error) {
	m.record("Complaints", makeName, model, modelYear)
	return &domain.ComplaintReport{Complaints: []domain.ComplaintRecord{}}, m.err
}

func (m *mockLookupService) Compare(_ context.Context, vins []string) (*domain.Comparison, error) {
	m.record("Compare", vins...)
	return &domain.Comparison{Vehicles: make([]domain.ComparisonRow, len(vins))}, m.err
}
