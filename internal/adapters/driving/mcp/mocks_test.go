package mcp

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/custodia-labs/autodata/internal/adapters/driving/registry"
)

// mockRegistry is a scripted Registry.
type mockRegistry struct {
	descriptors []registry.Descriptor
	result      *registry.Result
	err         error

	gotName  string
	gotInput json.RawMessage
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{
		descriptors: []registry.Descriptor{
			{
				Name:        "decode-vin",
				Description: "Decode a VIN",
				Price:       "0.01",
				InputSchema: &jsonschema.Schema{
					Type:       "object",
					Properties: map[string]*jsonschema.Schema{"vin": {Type: "string"}},
					Required:   []string{"vin"},
				},
			},
			{
				Name:        "all-makes",
				Description: "List every make",
				Price:       "0.005",
				InputSchema: &jsonschema.Schema{Type: "object"},
			},
		},
	}
}

func (m *mockRegistry) List() []registry.Descriptor {
	return m.descriptors
}

func (m *mockRegistry) Invoke(_ context.Context, name string, input json.RawMessage) (*registry.Result, error) {
	m.gotName = name
	m.gotInput = input
	return m.result, m.err
}
