// internal/domain/cart/repository.go
package cart

import "context"

// Repository is the document store for active carts, one document per user.
// FindByUser returns ErrCartNotFound on a miss; Save is an upsert keyed by
// the owning user.
type Repository interface {
	FindByUser(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
}

// SavedCartRepository is the document store for saved-cart snapshots,
// keyed by their own generated identifier. FindByID and Delete return
// ErrSavedCartNotFound on a miss; FindByUser lists newest first.
type SavedCartRepository interface {
	FindByID(ctx context.Context, id string) (*SavedCart, error)
	FindByUser(ctx context.Context, userID string) ([]SavedCart, error)
	Insert(ctx context.Context, saved *SavedCart) error
	Delete(ctx context.Context, id string) error
}
