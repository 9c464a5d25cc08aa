package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/autodata/internal/adapters/driving/registry"
)

func TestExtractEntrypointName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid", "autodata://entrypoints/decode-vin", "decode-vin"},
		{"invalid prefix", "file://entrypoints/decode-vin", ""},
		{"missing name", "autodata://entrypoints/", ""},
		{"nested path", "autodata://entrypoints/a/b", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractEntrypointName(tt.uri))
		})
	}
}

func TestServer_handleEntrypointsResource(t *testing.T) {
	server, err := NewServer(&Ports{Registry: newMockRegistry()})
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "autodata://entrypoints"}}
	res, err := server.handleEntrypointsResource(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)

	var list []registry.Descriptor
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "decode-vin", list[0].Name)
	assert.Equal(t, "0.01", list[0].Price)
}

func TestServer_handleEntrypointResource(t *testing.T) {
	server, err := NewServer(&Ports{Registry: newMockRegistry()})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("known entrypoint", func(t *testing.T) {
		req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "autodata://entrypoints/all-makes"}}
		res, err := server.handleEntrypointResource(ctx, req)

		require.NoError(t, err)
		assert.Contains(t, res.Contents[0].Text, `"name": "all-makes"`)
	})

	t.Run("unknown entrypoint", func(t *testing.T) {
		req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "autodata://entrypoints/nope"}}
		_, err := server.handleEntrypointResource(ctx, req)

		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "autodata://other"}}
		_, err := server.handleEntrypointResource(ctx, req)

		assert.Error(t, err)
	})
}
