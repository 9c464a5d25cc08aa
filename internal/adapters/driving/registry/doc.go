// Package registry is the catalogue of priced entrypoints.
//
// Each entrypoint pairs a name with a JSON input schema, a price tier and a
// handler over the lookup or usage services. Invoke validates the raw input
// against the schema before the handler runs, so handlers can assume
// well-formed input. Every dispatched call to a paid entrypoint is written to
// the usage ledger, successful or not.
//
// The MCP server, the REST API and the CLI usage commands all dispatch
// through a Registry.
package registry
