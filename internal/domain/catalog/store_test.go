package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func fixtureStore(t *testing.T) *Store {
	t.Helper()

	outOfStock := false
	raw := &RawCatalog{
		Products: []RawCategory{
			{
				CategoryID: "rugs",
				Category:   "Rugs",
				Items: []RawItem{
					{ID: 1, Name: "Mirzapur Wool Rug", Price: 12500, Manufacturer: "Uttar Pradesh", Tags: []string{"wool"}, Description: "Hand-knotted wool rug"},
					{ID: 2, Name: "Warangal Dhurrie", Manufacturer: "Telangana", PriceRange: []RawPriceOption{{Size: "3x5 ft", Amount: 3200}, {Size: "5x8 ft", Amount: 5400}}},
					{ID: 3, Name: "Jaipur Silk Rug", Price: 21000, Manufacturer: "Rajasthan", InStock: &outOfStock},
				},
			},
			{
				CategoryID: "wall_hanging",
				Category:   "Wall_Hanging",
				Items: []RawItem{
					{ID: 10, Name: "Kutch Tapestry", Price: 4800, Manufacturer: "Gujarat", Tags: []string{"embroidery"}},
					{ID: 11, Name: "Pattachitra Scroll", Price: 6500, Manufacturer: "Odisha"},
				},
			},
			{
				CategoryID: "pottery",
				Category:   "Pottery",
				Items: []RawItem{
					{ID: 20, Name: "Khurja Vase", Price: 1800},
					{ID: 21, Name: "Longpi Bowl Set", Price: 2600, Manufacturer: "Manipur"},
				},
			},
		},
	}

	cfg := &config.Config{
		Catalog: config.CatalogConfig{
			DefaultRegion:       "India",
			ImageBasePath:       "/images",
			RelatedLimit:        4,
			RecommendationLimit: 8,
		},
	}

	return NewStore(raw, cfg)
}

func ids(products []Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestByID(t *testing.T) {
	store := fixtureStore(t)

	product, ok := store.ByID(10)
	require.True(t, ok)
	assert.Equal(t, "Kutch Tapestry", product.Name)

	_, ok = store.ByID(999)
	assert.False(t, ok)
}

func TestSearchEmptyQueryReturnsFullList(t *testing.T) {
	store := fixtureStore(t)

	all := store.All()
	result := store.Search("")

	assert.Equal(t, all, result)
	assert.Equal(t, ids(all), ids(store.Search("   ")))
}

func TestSearchMatchesAcrossFields(t *testing.T) {
	store := fixtureStore(t)

	assert.Equal(t, []int64{1}, ids(store.Search("WOOL")), "tag match is case-insensitive")
	assert.Equal(t, []int64{10}, ids(store.Search("gujarat")), "region matches")
	assert.Equal(t, []int64{1, 2, 3}, ids(store.Search("rug")), "name and description match")
	assert.Empty(t, store.Search("no such thing"))
}

func TestFilterComposition(t *testing.T) {
	store := fixtureStore(t)

	result := store.Filter(Filters{Category: "Rugs", MinRating: 3.65})

	assert.Equal(t, []int64{2, 3}, ids(result))
	for _, p := range result {
		assert.Equal(t, "Rugs", p.Category)
		assert.GreaterOrEqual(t, p.Rating, 3.65)
	}
}

func TestFilterCategoryAllIsNoOp(t *testing.T) {
	store := fixtureStore(t)

	assert.Equal(t, ids(store.All()), ids(store.Filter(Filters{Category: "All"})))
	assert.Equal(t, ids(store.All()), ids(store.Filter(Filters{})))
}

func TestFilterCategoryNormalization(t *testing.T) {
	store := fixtureStore(t)

	// The catalog stores "Wall_Hanging"; the display form uses a space
	assert.Equal(t, []int64{10, 11}, ids(store.Filter(Filters{Category: "Wall Hanging"})))
	assert.Equal(t, []int64{10, 11}, ids(store.Filter(Filters{Category: "wall_hanging"})))
}

func TestFilterPriceRangeInclusive(t *testing.T) {
	store := fixtureStore(t)

	result := store.Filter(Filters{MinPrice: 1800, MaxPrice: 4800})

	assert.Equal(t, []int64{2, 10, 20, 21}, ids(result))
}

func TestFilterRegion(t *testing.T) {
	store := fixtureStore(t)

	assert.Equal(t, []int64{20}, ids(store.Filter(Filters{Region: "India"})))
	assert.Equal(t, ids(store.All()), ids(store.Filter(Filters{Region: "All"})))
}

func TestFilterInStockOnly(t *testing.T) {
	store := fixtureStore(t)

	result := store.Filter(Filters{InStockOnly: true})

	assert.NotContains(t, ids(result), int64(3))
	assert.Len(t, result, 6)
}

func TestFilterWithSortPass(t *testing.T) {
	store := fixtureStore(t)

	result := store.Filter(Filters{Category: "Rugs", SortBy: "price_asc"})

	assert.Equal(t, []int64{2, 1, 3}, ids(result))
}

func TestSortProducts(t *testing.T) {
	store := fixtureStore(t)
	all := store.All()

	tests := []struct {
		key  string
		want []int64
	}{
		{key: "price_asc", want: []int64{20, 21, 2, 10, 11, 1, 3}},
		{key: "price_desc", want: []int64{3, 1, 11, 10, 2, 21, 20}},
		{key: "rating", want: []int64{11, 10, 21, 20, 3, 2, 1}},
		{key: "name", want: []int64{3, 20, 10, 21, 1, 11, 2}},
		{key: "newest", want: []int64{21, 20, 11, 10, 3, 2, 1}},
		{key: "bogus", want: ids(all)},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortProducts(all, tt.key)))
		})
	}
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	products := []Product{
		{ID: 1, Price: 100},
		{ID: 2, Price: 100},
		{ID: 3, Price: 50},
	}

	sorted := SortProducts(products, "price_asc")

	assert.Equal(t, []int64{3, 1, 2}, ids(sorted), "equal prices keep prior relative order")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	store := fixtureStore(t)
	all := store.All()
	before := ids(all)

	SortProducts(all, "price_desc")

	assert.Equal(t, before, ids(all))
}

func TestCategoryAndRegionNames(t *testing.T) {
	store := fixtureStore(t)

	assert.Equal(t, []string{"Rugs", "Wall_Hanging", "Pottery"}, store.CategoryNames())
	assert.Equal(t, []string{"Uttar Pradesh", "Telangana", "Rajasthan", "Gujarat", "Odisha", "India", "Manipur"}, store.RegionNames())
	assert.Equal(t, 7, store.ProductCount())
	assert.Equal(t, 3, store.CategoryCount())
}

func TestPriceAggregates(t *testing.T) {
	store := fixtureStore(t)

	min, max := store.PriceBounds()
	assert.Equal(t, int64(1800), min)
	assert.Equal(t, int64(21000), max)
	assert.Equal(t, int64(7485), store.AveragePrice())
}

func TestRelatedExcludesSelfAndSortsByRating(t *testing.T) {
	store := fixtureStore(t)

	related := store.Related(1)

	assert.Equal(t, []int64{3, 2}, ids(related))
	assert.NotContains(t, ids(related), int64(1))

	assert.Nil(t, store.Related(999))
}

func TestRecommendationsInStockByRating(t *testing.T) {
	store := fixtureStore(t)

	recs := store.Recommendations()

	assert.Equal(t, []int64{11, 10, 21, 20, 2, 1}, ids(recs))
	for _, p := range recs {
		assert.True(t, p.InStock)
	}
}
