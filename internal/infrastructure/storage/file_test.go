package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart", []byte(`{"items":[]}`)))

	data, err := store.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"items":[]}`), data)
}

func TestFileStoreLoadMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreSaveReplacesInFull(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart", []byte("a much longer first payload")))
	require.NoError(t, store.Save(ctx, "cart", []byte("short")))

	data, err := store.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), data)
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cart", []byte("x")))
	require.NoError(t, store.Delete(ctx, "cart"))

	_, err = store.Load(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "cart"))
}

func TestMemoryStoreIsolatesStoredBytes(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	payload := []byte("original")
	require.NoError(t, store.Save(ctx, "k", payload))
	payload[0] = 'X'

	data, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data)
}
