// internal/domain/cart/entity.go
package cart

// LineItem is one row in the cart. The product id is the merge key: the
// cart never holds two lines for the same id. Display fields and the unit
// price are snapshotted at add time and do not track later catalog
// changes.
type LineItem struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Category  string `json:"category,omitempty"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Material  string `json:"material,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Snapshot is the persisted unit, a full mirror of the item list in
// first-added order. Every mutation rewrites it in full.
type Snapshot struct {
	Items []LineItem `json:"items"`
}

// Totals represents derived cart totals. They are recomputed from the
// current item list on every access, never maintained incrementally, so
// they cannot drift from the items.
type Totals struct {
	SubTotal     int64 `json:"sub_total"`
	ShippingCost int64 `json:"shipping_cost"`
	TaxAmount    int64 `json:"tax_amount"`
	TotalAmount  int64 `json:"total_amount"`
	ItemCount    int   `json:"item_count"` // Sum of all quantities
}
