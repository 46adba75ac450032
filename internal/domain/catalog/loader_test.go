package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenBuildsFlatList(t *testing.T) {
	outOfStock := false
	raw := &RawCatalog{
		Products: []RawCategory{
			{
				CategoryID: "rugs",
				Category:   "Rugs",
				Items: []RawItem{
					{
						ID:           1,
						Name:         "Wool Rug",
						Price:        12500,
						Image:        []string{"rugs/wool.jpg"},
						Manufacturer: "Uttar Pradesh",
						Tags:         []string{"wool", "featured"},
					},
					{
						ID:    2,
						Name:  "Dhurrie",
						Image: []string{"./rugs/dhurrie.jpg"},
						PriceRange: []RawPriceOption{
							{Size: "3x5 ft", Amount: 3200},
						},
						InStock: &outOfStock,
					},
				},
			},
			{
				CategoryID: "pottery",
				Category:   "Pottery",
				Items: []RawItem{
					{ID: 20, Name: "Vase", Price: 1800, SKU: "POT-020"},
				},
			},
		},
	}

	products := flatten(raw, "India", "/images")
	require.Len(t, products, 3)

	rug := products[0]
	assert.Equal(t, "Rugs", rug.Category)
	assert.Equal(t, "rugs", rug.CategoryID)
	assert.Equal(t, "Uttar Pradesh", rug.Region)
	assert.Equal(t, []string{"/images/rugs/wool.jpg"}, rug.Images)
	assert.True(t, rug.Featured)
	assert.True(t, rug.InStock)

	dhurrie := products[1]
	assert.Equal(t, "India", dhurrie.Region, "missing manufacturer falls back to the default region")
	assert.Equal(t, []string{"/images/rugs/dhurrie.jpg"}, dhurrie.Images)
	assert.Equal(t, int64(3200), dhurrie.EffectivePrice())
	assert.False(t, dhurrie.InStock)
	assert.Equal(t, "RUGS-2", dhurrie.SKU, "missing SKU is synthesized from category and id")

	vase := products[2]
	assert.Equal(t, "POT-020", vase.SKU)
	assert.Equal(t, []string{"/images/placeholder.png"}, vase.Images, "missing images get a placeholder")
}

func TestFlattenNilSource(t *testing.T) {
	assert.Nil(t, flatten(nil, "India", "/images"))
}

func TestSimulatedRatingIsDeterministicAndBounded(t *testing.T) {
	for id := int64(0); id < 60; id++ {
		rating := simulatedRating(id)
		assert.GreaterOrEqual(t, rating, 3.5)
		assert.LessOrEqual(t, rating, 4.9)
		assert.Equal(t, rating, simulatedRating(id))
		assert.Positive(t, simulatedReviewCount(id))
	}
}

func TestNormalizeImagePath(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "rugs/wool.jpg", want: "/images/rugs/wool.jpg"},
		{raw: "./rugs/wool.jpg", want: "/images/rugs/wool.jpg"},
		{raw: "/rugs/wool.jpg", want: "/images/rugs/wool.jpg"},
		{raw: "/images/rugs/wool.jpg", want: "/images/rugs/wool.jpg"},
		{raw: "rugs\\wool.jpg", want: "/images/rugs/wool.jpg"},
		{raw: "", want: "/images/placeholder.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeImagePath("/images", tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Wall_Hanging", want: "wall hanging"},
		{name: "Wall Hanging", want: "wall hanging"},
		{name: "  wall   hanging  ", want: "wall hanging"},
		{name: "RUGS", want: "rugs"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCategory(tt.name), "name=%q", tt.name)
	}
}
