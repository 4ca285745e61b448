// internal/domain/wishlist/entity.go
package wishlist

import "time"

// WishlistItem is a product a user wants later. Price is recorded at the
// moment of adding.
type WishlistItem struct {
	ProductID string    `bson:"product_id" json:"productId"`
	SKU       string    `bson:"sku,omitempty" json:"sku,omitempty"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	UnitPrice float64   `bson:"unit_price" json:"unitPrice"`
	AddedAt   time.Time `bson:"added_at" json:"addedAt"`
}

// Wishlist is a user's single wishlist; a product appears at most once.
type Wishlist struct {
	ID        string         `bson:"_id" json:"id"`
	UserID    string         `bson:"user_id" json:"userId"`
	Items     []WishlistItem `bson:"items" json:"items"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}
