package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownEntrypoint indicates no entrypoint is registered under the given name.
	ErrUnknownEntrypoint = errors.New("unknown entrypoint")

	// ErrUpstream indicates the upstream vehicle-data service failed the request.
	// Connector errors wrap it so callers can test with errors.Is.
	ErrUpstream = errors.New("upstream request failed")

	// ErrLedgerUnavailable indicates the usage ledger is not configured.
	ErrLedgerUnavailable = errors.New("usage ledger unavailable")
)
