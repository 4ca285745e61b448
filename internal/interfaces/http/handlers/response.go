// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/cart-backend/internal/domain/cart"
	"github.com/your-org/cart-backend/internal/domain/wishlist"
)

// statusForError maps classified service failures to HTTP statuses. Anything
// unclassified is a store failure and surfaces as 500 with its message
// verbatim.
func statusForError(err error) int {
	switch {
	case errors.Is(err, cart.ErrCartNotFound),
		errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, cart.ErrSavedCartNotFound),
		errors.Is(err, wishlist.ErrWishlistNotFound),
		errors.Is(err, wishlist.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, cart.ErrInvalidDiscountCode),
		errors.Is(err, wishlist.ErrDuplicateItem):
		return http.StatusBadRequest
	case errors.Is(err, cart.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{
		"success": false,
		"message": err.Error(),
	})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": err.Error(),
	})
}
