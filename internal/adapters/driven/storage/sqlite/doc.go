// Package sqlite persists the usage ledger in SQLite.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each migration is a pair of NNN_name.up.sql and
// NNN_name.down.sql files; applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.autodata/data/ledger.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. The database runs in WAL mode.
package sqlite
