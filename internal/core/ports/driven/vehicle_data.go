package driven

import (
	"context"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

// VehicleDataSource issues single read-only calls to the upstream
// vehicle-data service. Each method performs exactly one outbound request
// and never retries. Non-success responses return an error wrapping
// domain.ErrUpstream.
type VehicleDataSource interface {
	// DecodeVIN returns the raw attribute list for a VIN.
	DecodeVIN(ctx context.Context, vin string) ([]domain.RawAttribute, error)

	// GetAllMakes returns the make catalog.
	GetAllMakes(ctx context.Context) ([]domain.RawMake, error)

	// GetModelsForMake returns the model catalog for a make.
	GetModelsForMake(ctx context.Context, makeName string) ([]domain.RawModel, error)

	// RecallsByVehicle searches recalls by make, model and model year.
	// Values are sent exactly as given.
	RecallsByVehicle(ctx context.Context, makeName, model, modelYear string) ([]domain.RawRecall, error)

	// RecallsByVIN searches recalls by VIN.
	RecallsByVIN(ctx context.Context, vin string) ([]domain.RawRecall, error)

	// ComplaintsByVehicle searches consumer complaints by make, model and model year.
	ComplaintsByVehicle(ctx context.Context, makeName, model, modelYear string) ([]domain.RawComplaint, error)
}
