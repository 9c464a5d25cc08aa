// Package domain defines the core business entities for autodata.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawAttribute / CleanedSpec: decoded VIN attributes before and after cleaning
//   - VehicleIdentity: make, model and model year resolved from a CleanedSpec
//   - RecallRecord / ComplaintRecord: normalised safety records
//   - ComparisonRow: one subject of a multi-VIN comparison
//   - Transaction / UsageSummary: entries of the usage ledger
//   - Settings: process configuration
//
// Every entity is built fresh per request from upstream responses.
// Nothing in this package is cached or shared between requests.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
