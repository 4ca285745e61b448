// internal/domain/cart/totals.go
package cart

import "strings"

// Pure totals arithmetic. Every mutation of a cart must leave these
// invariants intact:
//
//	item.TotalPrice == item.Quantity * item.UnitPrice
//	cart.TotalAmount == sum of item.TotalPrice
//	cart.FinalAmount == cart.TotalAmount - cart.Discount

// lineTotal computes a line item's total price.
func lineTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

// cartTotalAmount sums the line totals of all items.
func cartTotalAmount(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}
	return total
}

// Recalculate recomputes TotalAmount and FinalAmount from the cart's items
// and its current discount.
func Recalculate(c *Cart) {
	c.TotalAmount = cartTotalAmount(c.Items)
	c.FinalAmount = c.TotalAmount - c.Discount
}

// ApplyDiscount looks up the code (case-insensitive) in the table and sets
// the cart's absolute discount from its current total. The cart is left
// untouched when the code is unknown.
func ApplyDiscount(c *Cart, code string, table map[string]float64) error {
	upper := strings.ToUpper(code)
	rate, ok := table[upper]
	if !ok {
		return ErrInvalidDiscountCode
	}

	c.Discount = c.TotalAmount * rate
	c.DiscountCode = upper
	c.FinalAmount = c.TotalAmount - c.Discount
	return nil
}

// RemoveDiscount resets the discount. Idempotent.
func RemoveDiscount(c *Cart) {
	c.Discount = 0
	c.DiscountCode = ""
	c.FinalAmount = c.TotalAmount
}
