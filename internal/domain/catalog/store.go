// internal/domain/catalog/store.go
package catalog

import (
	"sort"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
)

// Store exposes read-only query operations over the flattened product
// list. It is constructed once at startup and is safe for concurrent use
// because nothing ever mutates it.
type Store struct {
	products []Product
	config   *config.Config
}

// NewStore flattens the raw nested source and builds the catalog store
func NewStore(raw *RawCatalog, cfg *config.Config) *Store {
	return &Store{
		products: flatten(raw, cfg.Catalog.DefaultRegion, cfg.Catalog.ImageBasePath),
		config:   cfg,
	}
}

// Filters describes one filter pass. Zero values leave their dimension
// unconstrained; filters compose with AND.
type Filters struct {
	Category    string  `form:"category"`
	Region      string  `form:"region"`
	MinPrice    int64   `form:"min_price"`
	MaxPrice    int64   `form:"max_price"`
	MinRating   float64 `form:"min_rating"`
	InStockOnly bool    `form:"in_stock"`
	SortBy      string  `form:"sort_by"`
}

// All returns the full product list in catalog order
func (s *Store) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID returns the product with the given id, or false when absent
func (s *Store) ByID(id int64) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Search performs a case-insensitive substring match across name,
// description, category, region, artisan and tags. An empty query returns
// the full list.
func (s *Store) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.All()
	}

	var matches []Product
	for _, p := range s.products {
		if productMatches(p, query) {
			matches = append(matches, p)
		}
	}
	return matches
}

func productMatches(p Product, loweredQuery string) bool {
	fields := []string{p.Name, p.Description, p.Category, p.Region, p.Artisan}
	fields = append(fields, p.Tags...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), loweredQuery) {
			return true
		}
	}
	return false
}

// Filter applies each requested dimension in sequence, then the optional
// sort pass. A category of "All" (or empty) is a no-op on the category
// dimension; likewise for region.
func (s *Store) Filter(f Filters) []Product {
	result := s.All()

	if f.Category != "" && !strings.EqualFold(f.Category, "All") {
		want := NormalizeCategory(f.Category)
		result = keep(result, func(p Product) bool {
			return NormalizeCategory(p.Category) == want
		})
	}

	if f.Region != "" && !strings.EqualFold(f.Region, "All") {
		result = keep(result, func(p Product) bool {
			return strings.EqualFold(p.Region, f.Region)
		})
	}

	if f.MinPrice > 0 {
		result = keep(result, func(p Product) bool {
			return p.EffectivePrice() >= f.MinPrice
		})
	}

	if f.MaxPrice > 0 {
		result = keep(result, func(p Product) bool {
			return p.EffectivePrice() <= f.MaxPrice
		})
	}

	if f.MinRating > 0 {
		result = keep(result, func(p Product) bool {
			return p.Rating >= f.MinRating
		})
	}

	if f.InStockOnly {
		result = keep(result, func(p Product) bool {
			return p.InStock
		})
	}

	if f.SortBy != "" {
		result = SortProducts(result, f.SortBy)
	}

	return result
}

func keep(products []Product, pred func(Product) bool) []Product {
	filtered := products[:0]
	for _, p := range products {
		if pred(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortProducts returns a sorted copy of the given list. Equal keys keep
// their prior relative order; an unrecognized key returns the list
// unchanged.
func SortProducts(products []Product, key string) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	var less func(a, b Product) bool
	switch key {
	case "price_asc":
		less = func(a, b Product) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case "price_desc":
		less = func(a, b Product) bool { return a.EffectivePrice() > b.EffectivePrice() }
	case "rating":
		less = func(a, b Product) bool { return a.Rating > b.Rating }
	case "reviews":
		less = func(a, b Product) bool { return a.ReviewCount > b.ReviewCount }
	case "name":
		less = func(a, b Product) bool { return a.Name < b.Name }
	case "newest":
		less = func(a, b Product) bool { return a.ID > b.ID }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// CategoryNames returns the distinct category names in catalog order
func (s *Store) CategoryNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			names = append(names, p.Category)
		}
	}
	return names
}

// RegionNames returns the distinct region names in catalog order
func (s *Store) RegionNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range s.products {
		if !seen[p.Region] {
			seen[p.Region] = true
			names = append(names, p.Region)
		}
	}
	return names
}

// ProductCount returns the total number of products
func (s *Store) ProductCount() int {
	return len(s.products)
}

// CategoryCount returns the number of distinct categories
func (s *Store) CategoryCount() int {
	return len(s.CategoryNames())
}

// AveragePrice returns the mean effective price, zero for an empty catalog
func (s *Store) AveragePrice() int64 {
	if len(s.products) == 0 {
		return 0
	}
	var sum int64
	for _, p := range s.products {
		sum += p.EffectivePrice()
	}
	return sum / int64(len(s.products))
}

// PriceBounds returns the minimum and maximum effective price
func (s *Store) PriceBounds() (min, max int64) {
	for i, p := range s.products {
		price := p.EffectivePrice()
		if i == 0 {
			min, max = price, price
			continue
		}
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max
}

// Related returns products sharing a category or region with the given
// product, excluding it, best rated first, capped by configuration.
func (s *Store) Related(id int64) []Product {
	self, ok := s.ByID(id)
	if !ok {
		return nil
	}

	var related []Product
	for _, p := range s.products {
		if p.ID == id {
			continue
		}
		if p.Category == self.Category || p.Region == self.Region {
			related = append(related, p)
		}
	}

	related = SortProducts(related, "rating")
	return capped(related, s.config.Catalog.RelatedLimit)
}

// Recommendations returns the best rated in-stock products, capped by
// configuration.
func (s *Store) Recommendations() []Product {
	var inStock []Product
	for _, p := range s.products {
		if p.InStock {
			inStock = append(inStock, p)
		}
	}

	inStock = SortProducts(inStock, "rating")
	return capped(inStock, s.config.Catalog.RecommendationLimit)
}

func capped(products []Product, limit int) []Product {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
