// internal/domain/catalog/entity.go
package catalog

// Product is one flattened catalog entry. The list is built once at
// startup and never mutated afterwards.
type Product struct {
	ID           int64         `json:"id"`
	SKU          string        `json:"sku"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Details      string        `json:"details,omitempty"`
	Story        string        `json:"story,omitempty"`
	Category     string        `json:"category"`
	CategoryID   string        `json:"category_id"`
	Region       string        `json:"region"`
	Artisan      string        `json:"artisan"`
	Material     string        `json:"material,omitempty"`
	Color        string        `json:"color,omitempty"`
	Technique    string        `json:"technique,omitempty"`
	Dimensions   string        `json:"dimensions,omitempty"`
	Price        int64         `json:"price"` // Price in the smallest currency unit
	PriceOptions []PriceOption `json:"price_options,omitempty"`
	Images       []string      `json:"images"`
	Tags         []string      `json:"tags"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"review_count"`
	Featured     bool          `json:"featured"`
	InStock      bool          `json:"in_stock"`
}

// PriceOption is one size/price pair for products sold in multiple sizes
type PriceOption struct {
	Size   string `json:"size"`
	Amount int64  `json:"amount"`
}

// EffectivePrice returns the base price, falling back to the first price
// option for products sold only by size.
func (p *Product) EffectivePrice() int64 {
	if p.Price > 0 {
		return p.Price
	}
	if len(p.PriceOptions) > 0 {
		return p.PriceOptions[0].Amount
	}
	return 0
}

// PrimaryImage returns the first image path, or empty when none exist
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// RawCatalog mirrors the nested static source the storefront ships with:
// a list of categories, each carrying its items.
type RawCatalog struct {
	Products []RawCategory `json:"products"`
}

// RawCategory is one category block in the raw source
type RawCategory struct {
	CategoryID string    `json:"categoryId"`
	Category   string    `json:"category"`
	Items      []RawItem `json:"items"`
}

// RawItem is one product entry as it appears in the raw source
type RawItem struct {
	ID                  int64            `json:"id"`
	Name                string           `json:"name"`
	Price               int64            `json:"price"`
	PriceRange          []RawPriceOption `json:"priceRange,omitempty"`
	Image               []string         `json:"image"`
	Manufacturer        string           `json:"manufacturer,omitempty"`
	Material            string           `json:"material,omitempty"`
	DimensionsAvailable string           `json:"dimensionsAvailable,omitempty"`
	Color               string           `json:"color,omitempty"`
	WeavingTechnique    string           `json:"weavingTechnique,omitempty"`
	SKU                 string           `json:"SKU,omitempty"`
	Details             string           `json:"details,omitempty"`
	Tags                []string         `json:"tags,omitempty"`
	Story               string           `json:"story,omitempty"`
	Description         string           `json:"description,omitempty"`
	InStock             *bool            `json:"inStock,omitempty"`
}

// RawPriceOption is one size/amount pair in the raw source
type RawPriceOption struct {
	Size   string `json:"size"`
	Amount int64  `json:"amount"`
}
