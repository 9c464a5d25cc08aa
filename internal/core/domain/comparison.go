package domain

import "time"

// Comparison limits. Inputs outside the range are rejected by the
// entrypoint registry before any lookup runs.
const (
	MinCompareVINs = 2
	MaxCompareVINs = 5
)

// ComparisonRow is the merged view of one compared vehicle.
// RecallCount is 0 when the recall lookup for this row failed.
type ComparisonRow struct {
	VIN               string `json:"vin"`
	IsValid           bool   `json:"isValid"`
	Make              string `json:"make,omitempty"`
	Model             string `json:"model,omitempty"`
	ModelYear         string `json:"modelYear,omitempty"`
	Trim              string `json:"trim,omitempty"`
	VehicleType       string `json:"vehicleType,omitempty"`
	BodyClass         string `json:"bodyClass,omitempty"`
	Doors             string `json:"doors,omitempty"`
	DriveType         string `json:"driveType,omitempty"`
	FuelType          string `json:"fuelType,omitempty"`
	EngineCylinders   string `json:"engineCylinders,omitempty"`
	DisplacementL     string `json:"displacementL,omitempty"`
	TransmissionStyle string `json:"transmissionStyle,omitempty"`
	PlantCountry      string `json:"plantCountry,omitempty"`
	RecallCount       int    `json:"recallCount"`
}

// NewComparisonRow builds a row from selected cleaned attributes.
func NewComparisonRow(vin string, spec CleanedSpec) ComparisonRow {
	return ComparisonRow{
		VIN:               vin,
		IsValid:           spec.Get(AttrErrorCode) == "0",
		Make:              spec.Get(AttrMake),
		Model:             spec.Get(AttrModel),
		ModelYear:         spec.Get(AttrModelYear),
		Trim:              spec.Get(AttrTrim),
		VehicleType:       spec.Get(AttrVehicleType),
		BodyClass:         spec.Get(AttrBodyClass),
		Doors:             spec.Get(AttrDoors),
		DriveType:         spec.Get(AttrDriveType),
		FuelType:          spec.Get(AttrFuelType),
		EngineCylinders:   spec.Get(AttrEngineCylinders),
		DisplacementL:     spec.Get(AttrDisplacementL),
		TransmissionStyle: spec.Get(AttrTransmissionStyle),
		PlantCountry:      spec.Get(AttrPlantCountry),
	}
}

// Comparison is the result of comparing several VINs.
// Vehicles[i] corresponds to the i-th requested VIN.
type Comparison struct {
	Vehicles   []ComparisonRow `json:"vehicles"`
	ComparedAt time.Time       `json:"comparedAt"`
}
