package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/autodata/internal/logger"
)

// registerTools exposes every registry entrypoint as a tool of the same name.
func (s *Server) registerTools() {
	for _, d := range s.ports.Registry.List() {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        d.Name,
			Description: d.Description + " (price: $" + d.Price + ")",
			InputSchema: d.InputSchema,
		}, s.toolHandler(d.Name))
	}
}

// toolHandler dispatches a tool call to the registry entrypoint name.
// The structured result is the registry envelope {"output": ...}.
func (s *Server) toolHandler(
	name string,
) func(context.Context, *mcp.CallToolRequest, json.RawMessage) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input json.RawMessage) (*mcp.CallToolResult, any, error) {
		if string(input) == "null" {
			input = nil
		}
		res, err := s.ports.Registry.Invoke(ctx, name, input)
		if err != nil {
			logger.Warn("mcp: tool %s failed: %v", name, err)
			return nil, nil, err
		}
		return nil, res, nil
	}
}
