package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/ports/driving"
)

// Entrypoint names.
const (
	DecodeVIN         = "decode-vin"
	RecallsByVIN      = "recalls-by-vin"
	RecallsByVehicle  = "recalls-by-vehicle"
	ModelsForMake     = "models-for-make"
	AllMakes          = "all-makes"
	Complaints        = "complaints"
	CompareVINs       = "compare-vins"
	UsageSummary      = "usage-summary"
	UsageTransactions = "usage-transactions"
)

// vinPattern matches 17 VIN characters; I, O and Q are never used.
const vinPattern = "^[A-HJ-NPR-Za-hj-npr-z0-9]{17}$"

// yearPattern matches a four-digit model year.
const yearPattern = "^[0-9]{4}$"

var (
	vinRE  = regexp.MustCompile(vinPattern)
	yearRE = regexp.MustCompile(yearPattern)
)

// ValidVIN reports whether vin satisfies the entrypoint VIN schema.
func ValidVIN(vin string) bool {
	return vinRE.MatchString(vin)
}

// ValidYear reports whether year is a four-digit model year.
func ValidYear(year string) bool {
	return yearRE.MatchString(year)
}

// maxTransactionLimit caps usage-transactions.
const maxTransactionLimit = 500

// VINInput identifies a single vehicle.
type VINInput struct {
	VIN string `json:"vin" jsonschema:"17-character vehicle identification number"`
}

// VehicleInput identifies a vehicle by make, model and model year.
type VehicleInput struct {
	Make  string `json:"make" jsonschema:"vehicle make, e.g. Honda"`
	Model string `json:"model" jsonschema:"vehicle model, e.g. Accord"`
	Year  string `json:"year" jsonschema:"four-digit model year"`
}

// MakeInput names a make.
type MakeInput struct {
	Make string `json:"make" jsonschema:"vehicle make, e.g. Honda"`
}

// CompareInput lists the VINs to compare.
type CompareInput struct {
	VINs []string `json:"vins" jsonschema:"2 to 5 vehicle identification numbers"`
}

// EmptyInput takes no parameters.
type EmptyInput struct{}

// TransactionsInput bounds the transaction listing.
type TransactionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of transactions to return (default 50)"`
}

func buildEntrypoints(lookup driving.LookupService, usage driving.UsageService) ([]*Entrypoint, error) {
	vinSchema, err := schemaFor[VINInput](func(s *jsonschema.Schema) {
		constrainVIN(s.Properties["vin"])
	})
	if err != nil {
		return nil, err
	}
	vehicleSchema, err := schemaFor[VehicleInput](func(s *jsonschema.Schema) {
		s.Properties["make"].MinLength = intPtr(1)
		s.Properties["model"].MinLength = intPtr(1)
		s.Properties["year"].Pattern = yearPattern
	})
	if err != nil {
		return nil, err
	}
	makeSchema, err := schemaFor[MakeInput](func(s *jsonschema.Schema) {
		s.Properties["make"].MinLength = intPtr(1)
	})
	if err != nil {
		return nil, err
	}
	compareSchema, err := schemaFor[CompareInput](func(s *jsonschema.Schema) {
		vins := s.Properties["vins"]
		vins.MinItems = intPtr(domain.MinCompareVINs)
		vins.MaxItems = intPtr(domain.MaxCompareVINs)
		constrainVIN(vins.Items)
	})
	if err != nil {
		return nil, err
	}
	emptySchema, err := schemaFor[EmptyInput](nil)
	if err != nil {
		return nil, err
	}
	txSchema, err := schemaFor[TransactionsInput](func(s *jsonschema.Schema) {
		s.Properties["limit"].Minimum = floatPtr(1)
		s.Properties["limit"].Maximum = floatPtr(maxTransactionLimit)
	})
	if err != nil {
		return nil, err
	}

	return []*Entrypoint{
		{
			Name:         DecodeVIN,
			Description:  "Decode a VIN into its make, model, year and full specification",
			DefaultPrice: 10_000,
			Schema:       vinSchema,
			handler: typed(func(ctx context.Context, in VINInput) (any, error) {
				return lookup.Identify(ctx, in.VIN)
			}),
		},
		{
			Name:         RecallsByVIN,
			Description:  "Decode a VIN and list safety recalls for the resolved vehicle",
			DefaultPrice: 20_000,
			Schema:       vinSchema,
			handler: typed(func(ctx context.Context, in VINInput) (any, error) {
				return lookup.RecallsByVIN(ctx, in.VIN)
			}),
		},
		{
			Name:         RecallsByVehicle,
			Description:  "List safety recalls for a make, model and model year",
			DefaultPrice: 20_000,
			Schema:       vehicleSchema,
			handler: typed(func(ctx context.Context, in VehicleInput) (any, error) {
				return lookup.RecallsByVehicle(ctx, in.Make, in.Model, in.Year)
			}),
		},
		{
			Name:         ModelsForMake,
			Description:  "List every model name known for a make",
			DefaultPrice: 5_000,
			Schema:       makeSchema,
			handler: typed(func(ctx context.Context, in MakeInput) (any, error) {
				return lookup.ModelsForMake(ctx, in.Make)
			}),
		},
		{
			Name:         AllMakes,
			Description:  "List every vehicle make",
			DefaultPrice: 5_000,
			Schema:       emptySchema,
			handler: typed(func(ctx context.Context, _ EmptyInput) (any, error) {
				return lookup.Makes(ctx)
			}),
		},
		{
			Name:         Complaints,
			Description:  "List consumer complaints for a make, model and model year",
			DefaultPrice: 20_000,
			Schema:       vehicleSchema,
			handler: typed(func(ctx context.Context, in VehicleInput) (any, error) {
				return lookup.Complaints(ctx, in.Make, in.Model, in.Year)
			}),
		},
		{
			Name:         CompareVINs,
			Description:  "Compare 2 to 5 vehicles side by side with recall counts",
			DefaultPrice: 50_000,
			Schema:       compareSchema,
			handler: typed(func(ctx context.Context, in CompareInput) (any, error) {
				return lookup.Compare(ctx, in.VINs)
			}),
		},
		{
			Name:         UsageSummary,
			Description:  "Aggregate call counts and revenue per entrypoint",
			DefaultPrice: domain.Free,
			Schema:       emptySchema,
			handler: typed(func(ctx context.Context, _ EmptyInput) (any, error) {
				if usage == nil {
					return nil, domain.ErrLedgerUnavailable
				}
				return usage.Summary(ctx)
			}),
		},
		{
			Name:         UsageTransactions,
			Description:  "List recent entrypoint calls, newest first",
			DefaultPrice: domain.Free,
			Schema:       txSchema,
			handler: typed(func(ctx context.Context, in TransactionsInput) (any, error) {
				if usage == nil {
					return nil, domain.ErrLedgerUnavailable
				}
				return usage.Transactions(ctx, in.Limit)
			}),
		},
	}, nil
}

// typed adapts a handler over a decoded input struct.
func typed[T any](fn func(context.Context, T) (any, error)) Handler {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		var in T
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fn(ctx, in)
	}
}

// schemaFor infers the schema of T and applies tweak.
func schemaFor[T any](tweak func(*jsonschema.Schema)) (*jsonschema.Schema, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, fmt.Errorf("infer schema for %T: %w", *new(T), err)
	}
	if tweak != nil {
		tweak(s)
	}
	return s, nil
}

func constrainVIN(s *jsonschema.Schema) {
	s.MinLength = intPtr(17)
	s.MaxLength = intPtr(17)
	s.Pattern = vinPattern
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
