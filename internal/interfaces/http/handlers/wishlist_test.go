package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWishlistReturnsEnvelope(t *testing.T) {
	env := setupEnv("user-1")

	w := env.do(t, http.MethodGet, "/api/wishlist", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "user-1", data["userId"])
	assert.Empty(t, data["items"])
}

func TestWishlistAddItem(t *testing.T) {
	env := setupEnv("user-1")

	w := env.do(t, http.MethodPost, "/api/wishlist/add", gin.H{
		"productId": "p1", "sku": "SKU-1", "name": "Widget", "unitPrice": 9.5,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Item added to wishlist", body["message"])
	data := body["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
}

func TestWishlistAddDuplicateIsBadRequest(t *testing.T) {
	env := setupEnv("user-1")

	w := env.do(t, http.MethodPost, "/api/wishlist/add", gin.H{"productId": "p1", "unitPrice": 10})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/wishlist/add", gin.H{"productId": "p1", "unitPrice": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Item already in wishlist", body["message"])
}

func TestWishlistRemoveItem(t *testing.T) {
	env := setupEnv("user-1")

	w := env.do(t, http.MethodPost, "/api/wishlist/add", gin.H{"productId": "p1", "unitPrice": 10})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/wishlist/remove/p1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.Empty(t, data["items"])
}

func TestWishlistRemoveWithoutWishlist(t *testing.T) {
	env := setupEnv("user-1")

	w := env.do(t, http.MethodDelete, "/api/wishlist/remove/p1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Wishlist not found", body["message"])
}

func TestWishlistMoveToCart(t *testing.T) {
	env := setupEnv("user-1")

	w := env.do(t, http.MethodPost, "/api/wishlist/add", gin.H{
		"productId": "p1", "name": "Widget", "unitPrice": 12.5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/wishlist/move-to-cart/p1", gin.H{"quantity": 2})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Item moved to cart", body["message"])

	data := body["data"].(map[string]any)
	movedCart := data["cart"].(map[string]any)
	assert.Equal(t, 25.0, movedCart["totalAmount"])
	movedWishlist := data["wishlist"].(map[string]any)
	assert.Empty(t, movedWishlist["items"])
}

func TestWishlistMoveToCartWithoutBodyDefaultsQuantity(t *testing.T) {
	env := setupEnv("user-1")

	w := env.do(t, http.MethodPost, "/api/wishlist/add", gin.H{"productId": "p1", "unitPrice": 10})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/wishlist/move-to-cart/p1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	movedCart := data["cart"].(map[string]any)
	items := movedCart["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].(map[string]any)["quantity"])
}

func TestWishlistMoveUnknownItem(t *testing.T) {
	env := setupEnv("user-1")

	w := env.do(t, http.MethodGet, "/api/wishlist", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/wishlist/move-to-cart/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Item not found in wishlist", body["message"])
}

func TestWishlistClear(t *testing.T) {
	env := setupEnv("user-1")

	w := env.do(t, http.MethodPost, "/api/wishlist/add", gin.H{"productId": "p1", "unitPrice": 10})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/wishlist/clear", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Wishlist cleared", body["message"])
	data := body["data"].(map[string]any)
	assert.Empty(t, data["items"])
}
