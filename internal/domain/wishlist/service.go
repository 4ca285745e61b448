// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/cart-backend/internal/config"
	"github.com/your-org/cart-backend/internal/domain/cart"
)

// Service handles wishlist business logic
type Service struct {
	repo        Repository
	cartService *cart.Service
	config      *config.Config
}

// NewService creates a new wishlist service
func NewService(repo Repository, cartService *cart.Service, cfg *config.Config) *Service {
	return &Service{
		repo:        repo,
		cartService: cartService,
		config:      cfg,
	}
}

// AddItemRequest represents an add to wishlist request
type AddItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice" binding:"min=0"`
}

// MoveToCartResult carries both documents touched by a move.
type MoveToCartResult struct {
	Cart     *cart.Cart `json:"cart"`
	Wishlist *Wishlist  `json:"wishlist"`
}

// GetWishlist returns the user's wishlist, creating and persisting an empty
// one on first access.
func (s *Service) GetWishlist(ctx context.Context, userID string) (*Wishlist, error) {
	wishlist, err := s.repo.FindByUser(ctx, userID)
	if err == ErrWishlistNotFound {
		wishlist = s.newWishlist(userID)
		if err := s.repo.Save(ctx, wishlist); err != nil {
			return nil, err
		}
		return wishlist, nil
	}
	if err != nil {
		return nil, err
	}
	return wishlist, nil
}

// AddItem appends a product to the wishlist. A product already present is
// rejected rather than merged.
func (s *Service) AddItem(ctx context.Context, userID string, req *AddItemRequest) (*Wishlist, error) {
	wishlist, err := s.repo.FindByUser(ctx, userID)
	if err == ErrWishlistNotFound {
		wishlist = s.newWishlist(userID)
	} else if err != nil {
		return nil, err
	}

	for _, item := range wishlist.Items {
		if item.ProductID == req.ProductID {
			return nil, ErrDuplicateItem
		}
	}

	wishlist.Items = append(wishlist.Items, WishlistItem{
		ProductID: req.ProductID,
		SKU:       req.SKU,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		AddedAt:   time.Now().UTC(),
	})

	return s.persist(ctx, wishlist)
}

// RemoveItem filters the product out of the wishlist. Removing an absent
// product is a no-op.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (*Wishlist, error) {
	wishlist, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := wishlist.Items[:0]
	for _, item := range wishlist.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	wishlist.Items = kept

	return s.persist(ctx, wishlist)
}

// MoveToCart merges a wishlist item into the active cart at the price the
// wishlist recorded, then removes it from the wishlist. An existing cart
// line for the same product keeps the cart's stored price (the cart merge
// rule).
func (s *Service) MoveToCart(ctx context.Context, userID, productID string, quantity int) (*MoveToCartResult, error) {
	if quantity <= 0 {
		quantity = 1
	}

	wishlist, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var moved *WishlistItem
	for i := range wishlist.Items {
		if wishlist.Items[i].ProductID == productID {
			moved = &wishlist.Items[i]
			break
		}
	}
	if moved == nil {
		return nil, ErrItemNotFound
	}

	updatedCart, err := s.cartService.AddItem(ctx, userID, &cart.AddItemRequest{
		ProductID: moved.ProductID,
		SKU:       moved.SKU,
		Name:      moved.Name,
		Quantity:  quantity,
		UnitPrice: moved.UnitPrice,
	})
	if err != nil {
		return nil, err
	}

	kept := wishlist.Items[:0]
	for _, item := range wishlist.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	wishlist.Items = kept

	updatedWishlist, err := s.persist(ctx, wishlist)
	if err != nil {
		return nil, err
	}

	return &MoveToCartResult{
		Cart:     updatedCart,
		Wishlist: updatedWishlist,
	}, nil
}

// Clear empties the wishlist.
func (s *Service) Clear(ctx context.Context, userID string) (*Wishlist, error) {
	wishlist, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	wishlist.Items = []WishlistItem{}

	return s.persist(ctx, wishlist)
}

// Private helper methods

func (s *Service) newWishlist(userID string) *Wishlist {
	return &Wishlist{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []WishlistItem{},
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *Service) persist(ctx context.Context, wishlist *Wishlist) (*Wishlist, error) {
	wishlist.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}
