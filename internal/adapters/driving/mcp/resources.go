package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for autodata resources.
const uriScheme = "autodata://"

// registerResources registers the entrypoint catalogue resources.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "entrypoints",
		Name:        "entrypoints",
		Description: "Every entrypoint with its price and input schema",
		MIMEType:    "application/json",
	}, s.handleEntrypointsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "entrypoints/{name}",
		Name:        "entrypoint",
		Description: "Price and input schema of a single entrypoint",
		MIMEType:    "application/json",
	}, s.handleEntrypointResource)
}

// handleEntrypointsResource returns the full catalogue.
func (s *Server) handleEntrypointsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Registry.List())
}

// handleEntrypointResource returns one entrypoint's descriptor.
func (s *Server) handleEntrypointResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractEntrypointName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	for _, d := range s.ports.Registry.List() {
		if d.Name == name {
			return jsonResource(req.Params.URI, d)
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractEntrypointName extracts the name from autodata://entrypoints/{name}.
func extractEntrypointName(uri string) string {
	prefix := uriScheme + "entrypoints/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	name := strings.TrimPrefix(uri, prefix)
	if name == "" || strings.Contains(name, "/") {
		return ""
	}
	return name
}
