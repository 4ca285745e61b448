// internal/domain/wishlist/repository.go
package wishlist

import "context"

// Repository is the document store for wishlists, one document per user.
// FindByUser returns ErrWishlistNotFound on a miss; Save is an upsert keyed
// by the owning user.
type Repository interface {
	FindByUser(ctx context.Context, userID string) (*Wishlist, error)
	Save(ctx context.Context, wishlist *Wishlist) error
}
