// internal/domain/wishlist/errors.go
package wishlist

import "errors"

var (
	ErrWishlistNotFound = errors.New("Wishlist not found")
	ErrItemNotFound     = errors.New("Item not found in wishlist")
	ErrDuplicateItem    = errors.New("Item already in wishlist")
)
