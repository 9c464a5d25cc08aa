package domain

import "time"

// Attribute names consumed from a decoded VIN.
// Every other upstream attribute only ever appears inside a CleanedSpec.
const (
	AttrMake              = "Make"
	AttrModel             = "Model"
	AttrModelYear         = "Model Year"
	AttrTrim              = "Trim"
	AttrManufacturer      = "Manufacturer Name"
	AttrVehicleType       = "Vehicle Type"
	AttrBodyClass         = "Body Class"
	AttrDoors             = "Doors"
	AttrDriveType         = "Drive Type"
	AttrFuelType          = "Fuel Type - Primary"
	AttrEngineCylinders   = "Engine Number of Cylinders"
	AttrDisplacementL     = "Displacement (L)"
	AttrTransmissionStyle = "Transmission Style"
	AttrPlantCountry      = "Plant Country"
	AttrErrorCode         = "Error Code"
	AttrErrorText         = "Error Text"
)

// NotApplicable is the placeholder the decode service uses for attributes
// that do not apply to a vehicle.
const NotApplicable = "Not Applicable"

// RawAttribute is one Variable/Value pair of a VIN decode response.
type RawAttribute struct {
	Variable string
	Value    string
}

// CleanedSpec maps attribute names to non-empty values.
// Attributes whose upstream value was empty or NotApplicable are absent.
type CleanedSpec map[string]string

// Get returns the value for key, or empty string if absent.
func (s CleanedSpec) Get(key string) string {
	return s[key]
}

// Identity derives the vehicle identity from the cleaned attributes.
// Returns nil if make, model or model year is missing.
func (s CleanedSpec) Identity() *VehicleIdentity {
	id := VehicleIdentity{
		Make:      s[AttrMake],
		Model:     s[AttrModel],
		ModelYear: s[AttrModelYear],
	}
	if id.Make == "" || id.Model == "" || id.ModelYear == "" {
		return nil
	}
	return &id
}

// VehicleIdentity is the make, model and model year of a vehicle.
type VehicleIdentity struct {
	Make      string `json:"make"`
	Model     string `json:"model"`
	ModelYear string `json:"modelYear"`
}

// Identification is the result of decoding a single VIN.
// Decode errors reported by the upstream service are carried as data:
// IsValid is false and ErrorMessage holds the upstream text.
type Identification struct {
	VIN          string           `json:"vin"`
	IsValid      bool             `json:"isValid"`
	ErrorCode    string           `json:"errorCode,omitempty"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	Vehicle      *VehicleIdentity `json:"vehicle,omitempty"`
	Spec         CleanedSpec      `json:"spec"`
	FetchedAt    time.Time        `json:"fetchedAt"`
}
