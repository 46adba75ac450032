package wishlist

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

func testConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{
			CartKey:     "cartTest",
			WishlistKey: "wishlistTest",
		},
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testProduct(id int64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     "Saved Product",
		Category: "Pottery",
		Price:    1800,
		Images:   []string{"/images/test.jpg"},
	}
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	snapshots := storage.NewMemoryStore()
	return NewStore(snapshots, testConfig(), testLogger()), snapshots
}

func TestAddRejectsDuplicates(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.True(t, store.Add(ctx, testProduct(1)))
	assert.False(t, store.Add(ctx, testProduct(1)))

	assert.Equal(t, 1, store.Count())
	assert.True(t, store.Contains(1))
}

func TestToggle(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.True(t, store.Toggle(ctx, testProduct(1)), "first toggle saves")
	assert.True(t, store.Contains(1))

	assert.False(t, store.Toggle(ctx, testProduct(1)), "second toggle removes")
	assert.False(t, store.Contains(1))
	assert.Zero(t, store.Count())
}

func TestRemove(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Add(ctx, testProduct(1))

	assert.True(t, store.Remove(ctx, 1))
	assert.False(t, store.Remove(ctx, 1), "removing an absent entry reports false")
	assert.Zero(t, store.Count())
}

func TestClear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Add(ctx, testProduct(1))
	store.Add(ctx, testProduct(2))

	store.Clear(ctx)

	assert.Empty(t, store.Entries())
}

func TestMirrorIsBareArray(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()
	store.Add(ctx, testProduct(1))

	data, err := snapshots.Load(ctx, testConfig().Storage.WishlistKey)
	require.NoError(t, err)

	// The wishlist mirror has no wrapper object, unlike the cart
	var entries []Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ProductID)
}

func TestMirrorRoundTrip(t *testing.T) {
	snapshots := storage.NewMemoryStore()
	cfg := testConfig()
	ctx := context.Background()

	first := NewStore(snapshots, cfg, testLogger())
	first.Add(ctx, testProduct(1))
	first.Add(ctx, testProduct(2))

	second := NewStore(snapshots, cfg, testLogger())
	second.Restore(ctx)

	assert.True(t, second.RestoredFromMirror())
	assert.Equal(t, first.Entries(), second.Entries())
}

func TestRestoreCorruptMirrorFallsBackEmpty(t *testing.T) {
	snapshots := storage.NewMemoryStore()
	cfg := testConfig()
	ctx := context.Background()
	require.NoError(t, snapshots.Save(ctx, cfg.Storage.WishlistKey, []byte("][")))

	store := NewStore(snapshots, cfg, testLogger())
	store.Restore(ctx)

	assert.Empty(t, store.Entries())
	assert.False(t, store.RestoredFromMirror())
}
