package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("preprocess.default_type", "post")
	require.NoError(t, err)

	val, ok := store.Get("preprocess.default_type")
	assert.True(t, ok)
	assert.Equal(t, "post", val)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("output.format", "table")
	require.NoError(t, err)

	err = store.Set("output.format", "json")
	require.NoError(t, err)

	val, ok := store.Get("output.format")
	assert.True(t, ok)
	assert.Equal(t, "json", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("preprocess.default_type", "gallery_item")
	_ = store.Set("output.colour", true)

	assert.Equal(t, "gallery_item", store.GetString("preprocess.default_type"))
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.Equal(t, "", store.GetString("output.colour"), "wrong type yields empty string")
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("int_key", 42)
	_ = store.Set("int64_key", int64(43))
	_ = store.Set("float_key", float64(123.7))
	_ = store.Set("string_key", "not_a_number")

	assert.Equal(t, 42, store.GetInt("int_key"))
	assert.Equal(t, 43, store.GetInt("int64_key"))
	assert.Equal(t, 123, store.GetInt("float_key"))
	assert.Equal(t, 0, store.GetInt("string_key"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("output.colour", true)
	_ = store.Set("string_key", "true")

	assert.True(t, store.GetBool("output.colour"))
	assert.False(t, store.GetBool("string_key"), "wrong type yields false")
	assert.False(t, store.GetBool("nonexistent"))
}

func TestConfigStore_SaveAndLoad_NoOps(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	_ = store.Set("output.format", "text")
	require.NoError(t, store.Save())
	assert.Equal(t, "text", store.GetString("output.format"))
}

func TestConfigStore_Path(t *testing.T) {
	store := NewConfigStore()
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_MultipleInstances(t *testing.T) {
	store1 := NewConfigStore()
	store2 := NewConfigStore()

	_ = store1.Set("output.format", "json")
	_ = store2.Set("output.colour", false)

	_, ok := store1.Get("output.colour")
	assert.False(t, ok)

	_, ok = store2.Get("output.format")
	assert.False(t, ok)
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = store.Set("shared-key", id)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("shared-key")
		}()
	}
	wg.Wait()

	_, ok := store.Get("shared-key")
	assert.True(t, ok)
}
