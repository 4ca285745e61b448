// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// CartItem represents a single product line inside a cart. TotalPrice is
// derived: Quantity * UnitPrice.
type CartItem struct {
	ProductID  string  `bson:"product_id" json:"productId"`
	SKU        string  `bson:"sku,omitempty" json:"sku,omitempty"`
	Name       string  `bson:"name,omitempty" json:"name,omitempty"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	UnitPrice  float64 `bson:"unit_price" json:"unitPrice"`
	TotalPrice float64 `bson:"total_price" json:"totalPrice"`
}

// Cart is a user's single active cart. At most one document per user; at
// most one item per product.
type Cart struct {
	ID           string     `bson:"_id" json:"id"`
	UserID       string     `bson:"user_id" json:"userId"`
	Items        []CartItem `bson:"items" json:"items"`
	TotalAmount  float64    `bson:"total_amount" json:"totalAmount"`
	Discount     float64    `bson:"discount" json:"discount"`
	DiscountCode string     `bson:"discount_code,omitempty" json:"discountCode,omitempty"`
	FinalAmount  float64    `bson:"final_amount" json:"finalAmount"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updatedAt"`
}

// SavedCart is a named snapshot of a cart's items. A user may keep any
// number of them.
type SavedCart struct {
	ID          string     `bson:"_id" json:"id"`
	UserID      string     `bson:"user_id" json:"userId"`
	Name        string     `bson:"name" json:"name"`
	Items       []CartItem `bson:"items" json:"items"`
	TotalAmount float64    `bson:"total_amount" json:"totalAmount"`
	SavedAt     time.Time  `bson:"saved_at" json:"savedAt"`
}

// findItem returns the index of the item with the given product ID, or -1.
func findItem(items []CartItem, productID string) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
