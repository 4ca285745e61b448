package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculate(t *testing.T) {
	c := &Cart{
		Items: []CartItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 10, TotalPrice: 20},
			{ProductID: "p2", Quantity: 1, UnitPrice: 5.5, TotalPrice: 5.5},
		},
		Discount: 3,
	}

	Recalculate(c)

	assert.Equal(t, 25.5, c.TotalAmount)
	assert.Equal(t, 22.5, c.FinalAmount)
}

func TestRecalculateEmptyCart(t *testing.T) {
	c := &Cart{Items: []CartItem{}}

	Recalculate(c)

	assert.Zero(t, c.TotalAmount)
	assert.Zero(t, c.FinalAmount)
}

func TestApplyDiscountSetsAbsoluteAmount(t *testing.T) {
	table := map[string]float64{"SAVE10": 0.10}
	c := &Cart{TotalAmount: 200, FinalAmount: 200}

	require.NoError(t, ApplyDiscount(c, "SAVE10", table))

	assert.Equal(t, 20.0, c.Discount)
	assert.Equal(t, "SAVE10", c.DiscountCode)
	assert.Equal(t, 180.0, c.FinalAmount)
}

func TestApplyDiscountUppercasesCode(t *testing.T) {
	table := map[string]float64{"SAVE20": 0.20}
	c := &Cart{TotalAmount: 100, FinalAmount: 100}

	require.NoError(t, ApplyDiscount(c, "sAvE20", table))

	assert.Equal(t, "SAVE20", c.DiscountCode)
	assert.Equal(t, 20.0, c.Discount)
}

func TestApplyDiscountReplacesPreviousCode(t *testing.T) {
	table := map[string]float64{"SAVE10": 0.10, "SAVE20": 0.20}
	c := &Cart{TotalAmount: 100, FinalAmount: 100}

	require.NoError(t, ApplyDiscount(c, "SAVE10", table))
	require.NoError(t, ApplyDiscount(c, "SAVE20", table))

	assert.Equal(t, "SAVE20", c.DiscountCode)
	assert.Equal(t, 20.0, c.Discount)
	assert.Equal(t, 80.0, c.FinalAmount)
}

func TestApplyDiscountUnknownCodeLeavesCartUntouched(t *testing.T) {
	c := &Cart{TotalAmount: 100, Discount: 10, DiscountCode: "SAVE10", FinalAmount: 90}

	err := ApplyDiscount(c, "BOGUS", map[string]float64{"SAVE10": 0.10})

	assert.ErrorIs(t, err, ErrInvalidDiscountCode)
	assert.Equal(t, 10.0, c.Discount)
	assert.Equal(t, "SAVE10", c.DiscountCode)
	assert.Equal(t, 90.0, c.FinalAmount)
}

func TestRemoveDiscount(t *testing.T) {
	c := &Cart{TotalAmount: 100, Discount: 10, DiscountCode: "SAVE10", FinalAmount: 90}

	RemoveDiscount(c)
	RemoveDiscount(c)

	assert.Zero(t, c.Discount)
	assert.Empty(t, c.DiscountCode)
	assert.Equal(t, 100.0, c.FinalAmount)
}
