package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("server.http_addr", ":8080"))
	require.NoError(t, store.Set("server.http_addr", ":9090"))

	val, ok := store.Get("server.http_addr")
	assert.True(t, ok)
	assert.Equal(t, ":9090", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("s", "text"))
	require.NoError(t, store.Set("i", 7))
	require.NoError(t, store.Set("i64", int64(8)))
	require.NoError(t, store.Set("f", 9.9))
	require.NoError(t, store.Set("b", true))

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, "", store.GetString("i"))
	assert.Equal(t, 7, store.GetInt("i"))
	assert.Equal(t, 8, store.GetInt("i64"))
	assert.Equal(t, 9, store.GetInt("f"))
	assert.Equal(t, 0, store.GetInt("s"))
	assert.True(t, store.GetBool("b"))
	assert.False(t, store.GetBool("s"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("pricing.decode-vin", "0.01"))
	require.NoError(t, store.Set("pricing.all-makes", "0.005"))
	require.NoError(t, store.Set("server.http_addr", ":8080"))

	assert.Equal(t, []string{"pricing.all-makes", "pricing.decode-vin"}, store.Keys("pricing."))
	assert.Empty(t, store.Keys("ledger."))
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrent(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("pricing.k", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("pricing.k")
			_ = store.Keys("pricing.")
		}()
	}
	wg.Wait()

	_, ok := store.Get("pricing.k")
	assert.True(t, ok)
}
