package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/autodata/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/autodata/internal/adapters/driving/registry"
	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/services"
)

const (
	accordVIN = "1HGCM82633A004352"
	teslaVIN  = "5YJSA1E26HF000001"
)

var fetchedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// mockLookupService records calls and returns canned vehicle data.
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
	return &domain.Identification{
		VIN:     vin,
		IsValid: true,
		Vehicle: &domain.VehicleIdentity{Make: "HONDA", Model: "Accord", ModelYear: "2003"},
		Spec: domain.CleanedSpec{
			domain.AttrMake:      "HONDA",
			domain.AttrModel:     "Accord",
			domain.AttrModelYear: "2003",
			domain.AttrErrorCode: "0",
		},
		FetchedAt: fetchedAt,
	}, nil
}

func (m *mockLookupService) RecallsByVIN(_ context.Context, vin string) (*domain.RecallReport, error) {
	m.record("RecallsByVIN", vin)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.RecallReport{
		VIN:         vin,
		Vehicle:     &domain.VehicleIdentity{Make: "HONDA", Model: "Accord", ModelYear: "2003"},
		RecallCount: 1,
		Recalls: []domain.RecallRecord{{
			CampaignNumber: "03V556000",
			Component:      "AIR BAGS",
			Summary:        "Driver air bag inflator may rupture.",
		}},
		FetchedAt: fetchedAt,
	}, nil
}

func (m *mockLookupService) RecallsByVehicle(
	_ context.Context, makeName, model, modelYear string,
) (*domain.RecallReport, error) {
	m.record("RecallsByVehicle", makeName, model, modelYear)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.RecallReport{
		Vehicle:   &domain.VehicleIdentity{Make: makeName, Model: model, ModelYear: modelYear},
		Recalls:   []domain.RecallRecord{},
		FetchedAt: fetchedAt,
	}, nil
}

func (m *mockLookupService) ModelsForMake(_ context.Context, makeName string) (*domain.ModelCatalog, error) {
	m.record("ModelsForMake", makeName)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ModelCatalog{
		Make:       makeName,
		ModelCount: 2,
		Models:     []string{"Accord", "Civic"},
		FetchedAt:  fetchedAt,
	}, nil
}

func (m *mockLookupService) Makes(_ context.Context) (*domain.MakeCatalog, error) {
	m.record("Makes")
	if m.err != nil {
		return nil, m.err
	}
	return &domain.MakeCatalog{
		MakeCount: 3,
		Makes: []domain.Make{
			{ID: 474, Name: "HONDA"},
			{ID: 441, Name: "TESLA"},
			{ID: 448, Name: "TOYOTA"},
		},
		FetchedAt: fetchedAt,
	}, nil
}

func (m *mockLookupService) Complaints(
	_ context.Context, makeName, model, modelYear string,
) (*domain.ComplaintReport, error) {
	m.record("Complaints", makeName, model, modelYear)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ComplaintReport{
		Vehicle:        domain.VehicleIdentity{Make: makeName, Model: model, ModelYear: modelYear},
		ComplaintCount: 1,
		Complaints: []domain.ComplaintRecord{{
			ID:           10001,
			Component:    "ENGINE",
			Summary:      "Engine stalled on the highway.",
			Crash:        false,
			Fire:         true,
			Injuries:     0,
			DateReceived: "01/02/2004",
		}},
		FetchedAt: fetchedAt,
	}, nil
}

func (m *mockLookupService) Compare(_ context.Context, vins []string) (*domain.Comparison, error) {
	m.record("Compare", vins...)
	if m.err != nil {
		return nil, m.err
	}
	rows := make([]domain.ComparisonRow, 0, len(vins))
	for i, vin := range vins {
		rows = append(rows, domain.ComparisonRow{VIN: vin, IsValid: true, Make: "MAKE", RecallCount: i})
	}
	return &domain.Comparison{Vehicles: rows, ComparedAt: fetchedAt}, nil
}

type testServices struct {
	lookup   *mockLookupService
	usage    *services.UsageService
	settings *services.SettingsService
	config   *memory.ConfigStore
	registry *registry.Registry
}

// setupTestServices wires mock and in-memory services into the commands.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	ts := &testServices{
		lookup: &mockLookupService{},
		usage:  services.NewUsageService(memory.NewUsageStore()),
		config: memory.NewConfigStore(),
	}
	ts.settings = services.NewSettingsService(ts.config)

	reg, err := registry.New(ts.lookup, ts.usage)
	require.NoError(t, err)
	ts.registry = reg

	SetServices(Services{
		Lookup:   ts.lookup,
		Usage:    ts.usage,
		Settings: ts.settings,
		Registry: ts.registry,
	})
	t.Cleanup(func() {
		SetServices(Services{})
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
	})

	return ts
}

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so tests do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
