// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	store  *catalog.Store
	config *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *catalog.Store, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		config: cfg,
	}
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var filters catalog.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid filter parameters",
			"details": err.Error(),
		})
		return
	}

	products := h.store.Filter(filters)

	c.JSON(http.StatusOK, gin.H{
		"data":  products,
		"count": len(products),
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, ok := h.store.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// SearchProducts handles GET /products/search
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	products := h.store.Search(query)

	c.JSON(http.StatusOK, gin.H{
		"data":  products,
		"count": len(products),
		"query": query,
	})
}

// GetFilterMetadata handles GET /products/filters
func (h *CatalogHandler) GetFilterMetadata(c *gin.Context) {
	minPrice, maxPrice := h.store.PriceBounds()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"categories": h.store.CategoryNames(),
			"regions":    h.store.RegionNames(),
			"price_range": gin.H{
				"min": minPrice,
				"max": maxPrice,
			},
			"product_count":  h.store.ProductCount(),
			"category_count": h.store.CategoryCount(),
			"average_price":  h.store.AveragePrice(),
		},
	})
}

// GetRelatedProducts handles GET /products/:id/related
func (h *CatalogHandler) GetRelatedProducts(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if _, ok := h.store.ByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": h.store.Related(id),
	})
}

// GetRecommendations handles GET /products/recommendations
func (h *CatalogHandler) GetRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.store.Recommendations(),
	})
}
