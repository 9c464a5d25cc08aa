// Package connectors holds clients for the upstream services autodata reads from.
//
// Each connector implements driven.VehicleDataSource for one provider and
// returns raw rows; normalisation happens in internal/normalisers.
package connectors
