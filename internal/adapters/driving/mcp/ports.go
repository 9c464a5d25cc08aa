package mcp

import (
	"context"
	"encoding/json"

	"github.com/custodia-labs/autodata/internal/adapters/driving/registry"
)

// Registry is the subset of the entrypoint registry the server needs.
type Registry interface {
	List() []registry.Descriptor
	Invoke(ctx context.Context, name string, input json.RawMessage) (*registry.Result, error)
}

// Ports aggregates the dependencies of the MCP server.
type Ports struct {
	// Registry dispatches every tool call.
	Registry Registry
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Registry == nil {
		return ErrMissingRegistry
	}
	return nil
}
