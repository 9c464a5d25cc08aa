// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - VehicleDataSource: read-only access to the upstream vehicle-data service
//   - RecordNormaliser: turns upstream rows into clean domain records
//   - UsageStore: usage ledger persistence (SQLite or memory)
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
