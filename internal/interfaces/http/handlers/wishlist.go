// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/cart-backend/internal/domain/wishlist"
	"github.com/your-org/cart-backend/internal/interfaces/http/middleware"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// MoveToCartRequest represents a move to cart request
type MoveToCartRequest struct {
	Quantity int `json:"quantity"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.wishlistService.GetWishlist(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// AddItem handles POST /wishlist/add
func (h *WishlistHandler) AddItem(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req wishlist.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.wishlistService.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item added to wishlist",
		"data":    result,
	})
}

// RemoveItem handles DELETE /wishlist/remove/:productId
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	productID := c.Param("productId")

	result, err := h.wishlistService.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item removed from wishlist",
		"data":    result,
	})
}

// MoveToCart handles POST /wishlist/move-to-cart/:productId
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	productID := c.Param("productId")

	// Body is optional; quantity defaults to 1.
	var req MoveToCartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
	}

	result, err := h.wishlistService.MoveToCart(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item moved to cart",
		"data":    result,
	})
}

// Clear handles DELETE /wishlist/clear
func (h *WishlistHandler) Clear(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.wishlistService.Clear(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Wishlist cleared",
		"data":    result,
	})
}
