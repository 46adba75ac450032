// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

// Store is the single authoritative in-memory item list for the process,
// mirrored to the snapshot store on every mutation. Persistence failures
// are logged and swallowed: the in-memory list stays the source of truth
// and nothing crosses the store boundary (the mirror is only read back at
// startup).
type Store struct {
	mu        sync.Mutex
	items     []LineItem
	snapshots storage.SnapshotStore
	key       string
	config    *config.Config
	logger    *logrus.Logger
	restored  bool
}

// NewStore creates a new cart store
func NewStore(snapshots storage.SnapshotStore, cfg *config.Config, logger *logrus.Logger) *Store {
	return &Store{
		items:     []LineItem{},
		snapshots: snapshots,
		key:       cfg.Storage.CartKey,
		config:    cfg,
		logger:    logger,
	}
}

// Restore rehydrates the item list from the persisted mirror. A missing
// or corrupt mirror leaves the store empty; the corrupt case is logged
// but never surfaced.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.snapshots.Load(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return
	} else if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to load cart mirror, starting empty")
		return
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to parse cart mirror, starting empty")
		return
	}

	if snap.Items == nil {
		snap.Items = []LineItem{}
	}
	s.items = snap.Items
	s.restored = true
}

// RestoredFromMirror reports whether the current state came from a
// successfully parsed mirror rather than the empty fallback.
func (s *Store) RestoredFromMirror() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restored
}

// Add merges a product into the cart. An existing line for the same id
// accumulates quantity; otherwise a new line is appended with the product
// details snapshotted. A quantity below 1 is clamped to 1.
func (s *Store) Add(ctx context.Context, p catalog.Product, quantity int, size string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity += quantity
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.PrimaryImage(),
		Category:  p.Category,
		Size:      size,
		Color:     p.Color,
		Material:  p.Material,
		Price:     unitPrice(p, size),
		Quantity:  quantity,
	})
	s.persist(ctx)
}

// Remove drops the line with the given product id. Removing an absent id
// is a no-op, not an error.
func (s *Store) Remove(ctx context.Context, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// SetQuantity sets the quantity for a line, clamping at zero. A clamped
// result of zero removes the line in the same operation; no zero-quantity
// record is ever stored. Absent ids are a no-op.
func (s *Store) SetQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID != productID {
			continue
		}
		if quantity == 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		s.persist(ctx)
		return
	}
}

// Clear empties the cart unconditionally
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []LineItem{}
	s.persist(ctx)
}

// Items returns a copy of the current line items in first-added order
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Totals derives the financial totals from the current item list
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculateTotals(s.items, s.config.Pricing)
}

// ItemCount returns the sum of all line quantities
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func calculateTotals(items []LineItem, pricing config.PricingConfig) Totals {
	var totals Totals
	for _, item := range items {
		totals.SubTotal += item.Price * int64(item.Quantity)
		totals.ItemCount += item.Quantity
	}

	if totals.SubTotal > 0 {
		totals.ShippingCost = pricing.ShippingFlatRate
	}
	totals.TaxAmount = totals.SubTotal * pricing.TaxRatePercent / 100
	totals.TotalAmount = totals.SubTotal + totals.ShippingCost + totals.TaxAmount

	return totals
}

// persist rewrites the full mirror. Callers must hold the lock.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(Snapshot{Items: s.items})
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Error("Failed to serialize cart mirror")
		return
	}

	if err := s.snapshots.Save(ctx, s.key, data); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Failed to persist cart mirror")
	}
}

// unitPrice picks the price to snapshot: the matching size option when a
// size was chosen, the base price otherwise.
func unitPrice(p catalog.Product, size string) int64 {
	if size != "" {
		for _, opt := range p.PriceOptions {
			if opt.Size == size {
				return opt.Amount
			}
		}
	}
	return p.EffectivePrice()
}
