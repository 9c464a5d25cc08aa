// Package mcp exposes the entrypoint registry as an MCP (Model Context
// Protocol) server so that AI assistants can call vehicle-data lookups as tools.
package mcp

import "errors"

// ErrMissingRegistry is returned when the entrypoint registry is not provided.
var ErrMissingRegistry = errors.New("mcp: entrypoint registry is required")
