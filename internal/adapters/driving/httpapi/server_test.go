package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/autodata/internal/adapters/driving/registry"
	"github.com/custodia-labs/autodata/internal/core/domain"
)

type fakeRegistry struct {
	result   *registry.Result
	err      error
	gotName  string
	gotInput string
}

func (f *fakeRegistry) List() []registry.Descriptor {
	return []registry.Descriptor{{Name: "decode-vin", Description: "Decode a VIN", Price: "0.01"}}
}

func (f *fakeRegistry) Invoke(_ context.Context, name string, input json.RawMessage) (*registry.Result, error) {
	f.gotName = name
	f.gotInput = string(input)
	return f.result, f.err
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, NewServer(&fakeRegistry{}, nil), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListEntrypoints(t *testing.T) {
	rec := do(t, NewServer(&fakeRegistry{}, nil), http.MethodGet, "/v1/entrypoints", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var list []registry.Descriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "decode-vin", list[0].Name)
}

func TestInvoke_Success(t *testing.T) {
	reg := &fakeRegistry{result: &registry.Result{
		Output: map[string]any{"vin": "1HGCM82633A004352", "isValid": true},
		Price:  10_000,
	}}

	rec := do(t, NewServer(reg, nil), http.MethodPost, "/v1/entrypoints/decode-vin", `{"vin":"1HGCM82633A004352"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.01", rec.Header().Get("X-Price"))
	assert.JSONEq(t, `{"output":{"vin":"1HGCM82633A004352","isValid":true}}`, rec.Body.String())
	assert.Equal(t, "decode-vin", reg.gotName)
	assert.Equal(t, `{"vin":"1HGCM82633A004352"}`, reg.gotInput)
}

func TestInvoke_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"unknown entrypoint", domain.ErrUnknownEntrypoint, http.StatusNotFound},
		{"upstream", domain.ErrUpstream, http.StatusBadGateway},
		{"ledger", domain.ErrLedgerUnavailable, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &fakeRegistry{err: tt.err}

			rec := do(t, NewServer(reg, nil), http.MethodPost, "/v1/entrypoints/decode-vin", `{}`)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.err.Error()+`"}`, rec.Body.String())
			assert.Empty(t, rec.Header().Get("X-Price"))
		})
	}
}

func TestInvoke_WrongMethod(t *testing.T) {
	rec := do(t, NewServer(&fakeRegistry{}, nil), http.MethodGet, "/v1/entrypoints/decode-vin", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNotFound(t *testing.T) {
	rec := do(t, NewServer(&fakeRegistry{}, nil), http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestInvoke_BodyTooLarge(t *testing.T) {
	body := `{"vin":"` + strings.Repeat("A", maxBodyBytes) + `"}`

	rec := do(t, NewServer(&fakeRegistry{}, nil), http.MethodPost, "/v1/entrypoints/decode-vin", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestMCPMount(t *testing.T) {
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := do(t, NewServer(&fakeRegistry{}, mcpHandler), http.MethodPost, "/mcp", "{}")

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
