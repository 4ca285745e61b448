// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/cart-backend/internal/config"
	"github.com/your-org/cart-backend/internal/domain/cart"
	"github.com/your-org/cart-backend/internal/domain/wishlist"
	"github.com/your-org/cart-backend/internal/interfaces/http/handlers"
	"github.com/your-org/cart-backend/internal/interfaces/http/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes wires the cart and wishlist endpoints. Every route sits
// behind the authentication gate.
func SetupRoutes(rg *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	cartService := cart.NewService(
		cart.NewMongoRepository(db),
		cart.NewMongoSavedCartRepository(db),
		cfg,
	)
	wishlistService := wishlist.NewService(
		wishlist.NewMongoRepository(db),
		cartService,
		cfg,
	)

	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware(cfg))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCount)
		cartGroup.POST("/add", cartHandler.AddItem)
		cartGroup.PUT("/update/:productId", cartHandler.UpdateQuantity)
		cartGroup.DELETE("/remove/:productId", cartHandler.RemoveItem)
		cartGroup.POST("/apply-discount", cartHandler.ApplyDiscount)
		cartGroup.DELETE("/remove-discount", cartHandler.RemoveDiscount)
		cartGroup.POST("/validate", cartHandler.Validate)
		cartGroup.POST("/save", cartHandler.SaveCart)
		cartGroup.GET("/saved", cartHandler.ListSaved)
		cartGroup.POST("/restore/:savedCartId", cartHandler.RestoreCart)
		cartGroup.DELETE("/saved/:savedCartId", cartHandler.DeleteSaved)
		cartGroup.POST("/merge", cartHandler.MergeCart)
		cartGroup.DELETE("/clear", cartHandler.ClearCart)
	}

	wishlistGroup := rg.Group("/wishlist")
	wishlistGroup.Use(middleware.AuthMiddleware(cfg))
	{
		wishlistGroup.GET("", wishlistHandler.GetWishlist)
		wishlistGroup.POST("/add", wishlistHandler.AddItem)
		wishlistGroup.DELETE("/remove/:productId", wishlistHandler.RemoveItem)
		wishlistGroup.POST("/move-to-cart/:productId", wishlistHandler.MoveToCart)
		wishlistGroup.DELETE("/clear", wishlistHandler.Clear)
	}
}
