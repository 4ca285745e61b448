// internal/domain/cart/errors.go
package cart

import "errors"

var (
	ErrCartNotFound        = errors.New("Cart not found")
	ErrItemNotFound        = errors.New("Item not found in cart")
	ErrEmptyCart           = errors.New("Cart is empty")
	ErrInvalidDiscountCode = errors.New("Invalid discount code")
	ErrSavedCartNotFound   = errors.New("Saved cart not found")
	ErrForbidden           = errors.New("Access denied")
)
