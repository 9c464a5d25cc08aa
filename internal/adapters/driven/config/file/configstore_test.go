package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys(""))
}

func TestNewConfigStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "autodata")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[[broken"), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_LoadNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[upstream]
vpic_base_url = "http://localhost:9000/vpic"
timeout_seconds = 10

[ledger]
enabled = false

[pricing]
decode-vin = "0.03"
compare-vins = 0.1
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/vpic", store.GetString("upstream.vpic_base_url"))
	assert.Equal(t, 10, store.GetInt("upstream.timeout_seconds"))
	assert.False(t, store.GetBool("ledger.enabled"))
	_, exists := store.Get("ledger.enabled")
	assert.True(t, exists)
	assert.Equal(t, []string{"pricing.compare-vins", "pricing.decode-vin"}, store.Keys("pricing."))
	val, _ := store.Get("pricing.compare-vins")
	assert.Equal(t, 0.1, val)
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("server.http_addr", int64(8080)))

	assert.Equal(t, "", store.GetString("server.http_addr"))
	assert.False(t, store.GetBool("server.http_addr"))
	assert.Equal(t, 8080, store.GetInt("server.http_addr"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_SetPersistsNested(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("pricing.decode-vin", "0.02"))
	require.NoError(t, store.Set("server.http_addr", ":9090"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[pricing]")
	assert.Contains(t, string(raw), "[server]")

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "0.02", reopened.GetString("pricing.decode-vin"))
	assert.Equal(t, ":9090", reopened.GetString("server.http_addr"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("ledger.enabled", true))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_LoadPicksUpExternalEdit(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("pricing.all-makes", "0.005"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("[pricing]\nall-makes = \"0.5\"\n"), 0600))
	require.NoError(t, store.Load())

	assert.Equal(t, "0.5", store.GetString("pricing.all-makes"))
}

func TestFlattenAndNest(t *testing.T) {
	nested := map[string]any{
		"upstream": map[string]any{"timeout_seconds": int64(5)},
		"pricing":  map[string]any{"decode-vin": "0.01"},
		"top":      true,
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"upstream.timeout_seconds": int64(5),
		"pricing.decode-vin":       "0.01",
		"top":                      true,
	}, flat)
	assert.Equal(t, nested, nestMap(flat))
}

func TestNestMap_ValueShadowsTable(t *testing.T) {
	got := nestMap(map[string]any{
		"a":   "scalar",
		"a.b": "dropped",
	})

	assert.Equal(t, map[string]any{"a": "scalar"}, got)
}
