// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/pkg/receipt"
)

// Dependencies carries the constructed stores and services the routes
// bind to. Stores are built once at startup and injected here instead of
// living as package globals.
type Dependencies struct {
	Config   *config.Config
	Catalog  *catalog.Store
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Checkout *checkout.Service
	Receipt  *receipt.Service
}

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	setupCatalogRoutes(rg, deps)
	setupCartRoutes(rg, deps)
	setupWishlistRoutes(rg, deps)
	setupCheckoutRoutes(rg, deps)
}

func setupCatalogRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog, deps.Config)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/search", catalogHandler.SearchProducts)
		products.GET("/filters", catalogHandler.GetFilterMetadata)
		products.GET("/recommendations", catalogHandler.GetRecommendations)
		products.GET("/:id", catalogHandler.GetProduct)
		products.GET("/:id/related", catalogHandler.GetRelatedProducts)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Catalog, deps.Config)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

func setupWishlistRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	wishlistHandler := handlers.NewWishlistHandler(deps.Wishlist, deps.Catalog, deps.Config)

	wishlistGroup := rg.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/items", wishlistHandler.AddToWishlist)
		wishlistGroup.POST("/items/:id/toggle", wishlistHandler.ToggleWishlistItem)
		wishlistGroup.DELETE("/items/:id", wishlistHandler.RemoveFromWishlist)
		wishlistGroup.DELETE("", wishlistHandler.ClearWishlist)
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout, deps.Receipt, deps.Config)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.POST("", checkoutHandler.PlaceOrder)
		checkoutGroup.GET("/orders/:number", checkoutHandler.GetOrder)
		checkoutGroup.GET("/orders/:number/receipt", checkoutHandler.GetReceipt)
	}
}
