// internal/domain/catalog/loader.go
package catalog

import (
	"fmt"
	"path"
	"strings"
)

// flatten walks the raw nested source (category -> items) and builds the
// flat product list the store queries. The raw structure is assumed
// well-formed static data; a malformed record produces a degenerate
// product, not an error.
func flatten(raw *RawCatalog, defaultRegion, imageBasePath string) []Product {
	if raw == nil {
		return nil
	}

	var products []Product
	for _, cat := range raw.Products {
		for _, item := range cat.Items {
			products = append(products, buildProduct(cat, item, defaultRegion, imageBasePath))
		}
	}
	return products
}

func buildProduct(cat RawCategory, item RawItem, defaultRegion, imageBasePath string) Product {
	region := item.Manufacturer
	if region == "" {
		region = defaultRegion
	}

	images := make([]string, 0, len(item.Image))
	for _, img := range item.Image {
		images = append(images, NormalizeImagePath(imageBasePath, img))
	}
	if len(images) == 0 {
		images = append(images, NormalizeImagePath(imageBasePath, "placeholder.png"))
	}

	inStock := true
	if item.InStock != nil {
		inStock = *item.InStock
	}

	sku := item.SKU
	if sku == "" {
		sku = fmt.Sprintf("%s-%d", strings.ToUpper(cat.CategoryID), item.ID)
	}

	tags := make([]string, len(item.Tags))
	copy(tags, item.Tags)

	return Product{
		ID:           item.ID,
		SKU:          sku,
		Name:         item.Name,
		Description:  item.Description,
		Details:      item.Details,
		Story:        item.Story,
		Category:     cat.Category,
		CategoryID:   cat.CategoryID,
		Region:       region,
		Artisan:      item.Manufacturer,
		Material:     item.Material,
		Color:        item.Color,
		Technique:    item.WeavingTechnique,
		Dimensions:   item.DimensionsAvailable,
		Price:        item.Price,
		PriceOptions: toPriceOptions(item.PriceRange),
		Images:       images,
		Tags:         tags,
		Rating:       simulatedRating(item.ID),
		ReviewCount:  simulatedReviewCount(item.ID),
		Featured:     hasTag(item.Tags, "featured"),
		InStock:      inStock,
	}
}

func toPriceOptions(raw []RawPriceOption) []PriceOption {
	if len(raw) == 0 {
		return nil
	}
	options := make([]PriceOption, len(raw))
	for i, opt := range raw {
		options[i] = PriceOption{Size: opt.Size, Amount: opt.Amount}
	}
	return options
}

// simulatedRating derives a stable pseudo rating in [3.5, 4.9] from the
// product id. The source has no review backend; ratings only need to be
// deterministic so sorts and filters are reproducible.
func simulatedRating(id int64) float64 {
	return 3.5 + float64(id%15)/10
}

func simulatedReviewCount(id int64) int {
	return 12 + int(id*7%120)
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

// NormalizeImagePath resolves a raw image reference to a rooted path under
// base. Relative markers and backslashes from the source data are cleaned
// up; an already-rooted path under base passes through unchanged.
func NormalizeImagePath(base, raw string) string {
	cleaned := strings.ReplaceAll(raw, "\\", "/")
	cleaned = strings.TrimPrefix(cleaned, "./")
	if cleaned == "" {
		cleaned = "placeholder.png"
	}
	if strings.HasPrefix(cleaned, base+"/") || cleaned == base {
		return path.Clean(cleaned)
	}
	return path.Join(base, strings.TrimPrefix(cleaned, "/"))
}

// NormalizeCategory reconciles underscore- and space-separated spellings
// of the same category name. "Wall_Hanging" and "wall hanging" normalize
// to the same value.
func NormalizeCategory(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}
