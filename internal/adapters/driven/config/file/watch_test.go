package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replaceFile writes content beside path and renames it over path, the way
// editors save atomically.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := filepath.Join(filepath.Dir(path), ".config.toml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0600))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatch_NotifiesOnReplace(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, store.Path(), func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	replaceFile(t, store.Path(), "[pricing]\ndecode-vin = \"0.04\"\n")

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("onChange was not called")
	}
	// Watch only signals; the store changes once the caller reloads it.
	assert.Empty(t, store.GetString("pricing.decode-vin"))
	require.NoError(t, store.Load())
	assert.Equal(t, "0.04", store.GetString("pricing.decode-vin"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 8)
	go func() {
		_ = Watch(ctx, path, func() { changed <- struct{}{} })
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))

	select {
	case <-changed:
		t.Fatal("onChange called for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatch_InvalidFileLeavesStoreUntouched(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("pricing.decode-vin", "0.01"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 8)
	go func() {
		_ = Watch(ctx, store.Path(), func() { changed <- struct{}{} })
	}()

	time.Sleep(100 * time.Millisecond)
	replaceFile(t, store.Path(), "[[broken")

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("onChange was not called")
	}
	assert.Error(t, store.Load())
	assert.Equal(t, "0.01", store.GetString("pricing.decode-vin"))
}

func TestWatch_MissingDir(t *testing.T) {
	err := Watch(context.Background(), "/nonexistent/dir/config.toml", func() {})

	assert.Error(t, err)
}
