// internal/domain/wishlist/store.go
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

// Store holds the persisted set of saved products. Adding a duplicate is
// a no-op; Toggle implements the add-or-remove behavior the storefront
// heart button wants. Same mirror discipline as the cart: every mutation
// rewrites the full persisted list.
type Store struct {
	mu        sync.Mutex
	entries   []Entry
	snapshots storage.SnapshotStore
	key       string
	logger    *logrus.Logger
	restored  bool
}

// NewStore creates a new wishlist store
func NewStore(snapshots storage.SnapshotStore, cfg *config.Config, logger *logrus.Logger) *Store {
	return &Store{
		entries:   []Entry{},
		snapshots: snapshots,
		key:       cfg.Storage.WishlistKey,
		logger:    logger,
	}
}

// Restore rehydrates the entry list from the persisted mirror, falling
// back to empty on a missing or corrupt mirror.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.snapshots.Load(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return
	} else if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to load wishlist mirror, starting empty")
		return
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to parse wishlist mirror, starting empty")
		return
	}

	if entries == nil {
		entries = []Entry{}
	}
	s.entries = entries
	s.restored = true
}

// RestoredFromMirror reports whether the current state came from a
// successfully parsed mirror rather than the empty fallback.
func (s *Store) RestoredFromMirror() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restored
}

// Add saves a product. Returns false without modifying anything when the
// product is already saved.
func (s *Store) Add(ctx context.Context, p catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(p.ID) >= 0 {
		return false
	}

	s.entries = append(s.entries, newEntry(p))
	s.persist(ctx)
	return true
}

// Toggle adds the product when absent and removes it when present.
// Returns true when the product is saved after the call.
func (s *Store) Toggle(ctx context.Context, p catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		s.persist(ctx)
		return false
	}

	s.entries = append(s.entries, newEntry(p))
	s.persist(ctx)
	return true
}

// Remove drops the entry for the given product id. Returns false when no
// such entry existed.
func (s *Store) Remove(ctx context.Context, productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.persist(ctx)
	return true
}

// Clear empties the wishlist unconditionally
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []Entry{}
	s.persist(ctx)
}

// Entries returns a copy of the saved entries in insertion order
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Contains reports whether the product is saved
func (s *Store) Contains(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// Count returns the number of saved entries
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// indexOf returns the position of the entry for productID, or -1.
// Callers must hold the lock.
func (s *Store) indexOf(productID int64) int {
	for i := range s.entries {
		if s.entries[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// persist rewrites the full mirror as a bare array. Callers must hold
// the lock.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.entries)
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Error("Failed to serialize wishlist mirror")
		return
	}

	if err := s.snapshots.Save(ctx, s.key, data); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to persist wishlist mirror")
	}
}

func newEntry(p catalog.Product) Entry {
	return Entry{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.PrimaryImage(),
		Category:  p.Category,
		Price:     p.EffectivePrice(),
		AddedAt:   time.Now().UTC(),
	}
}
