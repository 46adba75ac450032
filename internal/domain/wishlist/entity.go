// internal/domain/wishlist/entity.go
package wishlist

import "time"

// Entry is one saved product. At most one entry exists per product id.
// Unlike the cart mirror, the persisted form is the bare entry array with
// no wrapper object.
type Entry struct {
	ProductID int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Category  string    `json:"category,omitempty"`
	Price     int64     `json:"price"`
	AddedAt   time.Time `json:"added_at"`
}
