// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no snapshot exists under the requested key.
var ErrNotFound = errors.New("storage: key not found")

// SnapshotStore is the persistence port the domain stores write their
// serialized mirrors through. Every Save replaces the previous value in
// full; there are no partial updates.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
