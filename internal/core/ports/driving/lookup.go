package driving

import (
	"context"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

// LookupService runs vehicle-data lookups against the upstream service.
// Inputs are assumed to be validated by the caller.
type LookupService interface {
	// Identify decodes a VIN. Decode errors reported by the upstream
	// service are returned as data, not as an error.
	Identify(ctx context.Context, vin string) (*domain.Identification, error)

	// RecallsByVIN decodes a VIN and searches recalls for the resolved vehicle.
	// Unresolvable VINs and failed recall searches yield an empty report.
	RecallsByVIN(ctx context.Context, vin string) (*domain.RecallReport, error)

	// RecallsByVehicle searches recalls by make, model and model year.
	RecallsByVehicle(ctx context.Context, makeName, model, modelYear string) (*domain.RecallReport, error)

	// ModelsForMake lists model names for a make.
	ModelsForMake(ctx context.Context, makeName string) (*domain.ModelCatalog, error)

	// Makes lists every make.
	Makes(ctx context.Context) (*domain.MakeCatalog, error)

	// Complaints searches consumer complaints for a vehicle.
	Complaints(ctx context.Context, makeName, model, modelYear string) (*domain.ComplaintReport, error)

	// Compare decodes several VINs concurrently and attaches a recall count to each.
	Compare(ctx context.Context, vins []string) (*domain.Comparison, error)
}
