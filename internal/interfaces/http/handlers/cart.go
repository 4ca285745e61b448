// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/cart-backend/internal/domain/cart"
	"github.com/your-org/cart-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// ApplyDiscountRequest represents an apply discount request
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// SaveCartRequest represents a save cart request
type SaveCartRequest struct {
	Name string `json:"name"`
}

// MergeCartRequest carries the guest session's items
type MergeCartRequest struct {
	GuestCart []cart.GuestItem `json:"guestCart" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// GetCount handles GET /cart/count
func (h *CartHandler) GetCount(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	count, err := h.cartService.Count(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
	})
}

// AddItem handles POST /cart/add
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.cartService.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item added to cart",
		"data":    result,
	})
}

// UpdateQuantity handles PUT /cart/update/:productId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	productID := c.Param("productId")

	// Quantity deliberately carries no minimum: zero or less removes the item.
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.cartService.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart updated",
		"data":    result,
	})
}

// RemoveItem handles DELETE /cart/remove/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	productID := c.Param("productId")

	result, err := h.cartService.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item removed from cart",
		"data":    result,
	})
}

// ApplyDiscount handles POST /cart/apply-discount
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.cartService.ApplyDiscount(c.Request.Context(), userID, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Discount applied successfully",
		"data":    result,
	})
}

// RemoveDiscount handles DELETE /cart/remove-discount
func (h *CartHandler) RemoveDiscount(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.cartService.RemoveDiscount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Discount removed",
		"data":    result,
	})
}

// Validate handles POST /cart/validate
func (h *CartHandler) Validate(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.cartService.Validate(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Cart is valid"
	if !result.IsValid {
		message = "Some items are unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"message":          message,
		"isValid":          result.IsValid,
		"unavailableItems": result.UnavailableItems,
	})
}

// SaveCart handles POST /cart/save
func (h *CartHandler) SaveCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	// Body is optional: saving without a name gets a generated one.
	var req SaveCartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
	}

	saved, err := h.cartService.Save(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart saved successfully",
		"data":    saved,
	})
}

// ListSaved handles GET /cart/saved
func (h *CartHandler) ListSaved(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	saved, err := h.cartService.ListSaved(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    saved,
	})
}

// RestoreCart handles POST /cart/restore/:savedCartId
func (h *CartHandler) RestoreCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	savedCartID := c.Param("savedCartId")

	result, err := h.cartService.Restore(c.Request.Context(), userID, savedCartID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart restored successfully",
		"data":    result,
	})
}

// DeleteSaved handles DELETE /cart/saved/:savedCartId
func (h *CartHandler) DeleteSaved(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	savedCartID := c.Param("savedCartId")

	if err := h.cartService.DeleteSaved(c.Request.Context(), userID, savedCartID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Saved cart deleted successfully",
	})
}

// MergeCart handles POST /cart/merge
func (h *CartHandler) MergeCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req MergeCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.cartService.Merge(c.Request.Context(), userID, req.GuestCart)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Carts merged successfully",
		"data":    result,
	})
}

// ClearCart handles DELETE /cart/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	result, err := h.cartService.Clear(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared",
		"data":    result,
	})
}
