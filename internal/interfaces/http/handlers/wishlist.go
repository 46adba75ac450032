// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistStore *wishlist.Store
	catalog       *catalog.Store
	config        *config.Config
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistStore *wishlist.Store, catalogStore *catalog.Store, cfg *config.Config) *WishlistHandler {
	return &WishlistHandler{
		wishlistStore: wishlistStore,
		catalog:       catalogStore,
		config:        cfg,
	}
}

// AddToWishlistRequest represents add to wishlist request
type AddToWishlistRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	entries := h.wishlistStore.Entries()

	c.JSON(http.StatusOK, gin.H{
		"data":  entries,
		"count": len(entries),
	})
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	added := h.wishlistStore.Add(c.Request.Context(), product)
	if !added {
		c.JSON(http.StatusOK, gin.H{
			"message": "Item already in wishlist",
			"added":   false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist successfully",
		"added":   true,
	})
}

// ToggleWishlistItem handles POST /wishlist/items/:id/toggle
func (h *WishlistHandler) ToggleWishlistItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, ok := h.catalog.ByID(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	saved := h.wishlistStore.Toggle(c.Request.Context(), product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist updated successfully",
		"saved":   saved,
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if !h.wishlistStore.Remove(c.Request.Context(), productID) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist successfully",
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	h.wishlistStore.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist cleared successfully",
	})
}
