// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/cart-backend/internal/config"
)

// Service handles cart business logic
type Service struct {
	repo      Repository
	savedRepo SavedCartRepository
	config    *config.Config
}

// NewService creates a new cart service
func NewService(repo Repository, savedRepo SavedCartRepository, cfg *config.Config) *Service {
	return &Service{
		repo:      repo,
		savedRepo: savedRepo,
		config:    cfg,
	}
}

// AddItemRequest represents an add to cart request
type AddItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unitPrice" binding:"min=0"`
}

// GuestItem is a line item carried over from a guest session during merge.
type GuestItem struct {
	ProductID string  `json:"productId" binding:"required"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unitPrice" binding:"min=0"`
}

// ValidationResult reports whether a cart is ready for checkout. Stock
// checks belong to the inventory service, so UnavailableItems stays empty
// here.
type ValidationResult struct {
	IsValid          bool       `json:"isValid"`
	UnavailableItems []CartItem `json:"unavailableItems"`
}

// GetCart returns the user's cart, creating and persisting an empty one on
// first access.
func (s *Service) GetCart(ctx context.Context, userID string) (*Cart, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err == ErrCartNotFound {
		cart = s.newCart(userID)
		if err := s.repo.Save(ctx, cart); err != nil {
			return nil, err
		}
		return cart, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// Count returns the sum of quantities across the cart's items. A user with
// no cart gets 0; no cart is created.
func (s *Service) Count(ctx context.Context, userID string) (int, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err == ErrCartNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count, nil
}

// AddItem adds a product to the cart or, when the product is already
// present, increments its quantity. The merged line keeps the unit price
// already on record; the caller's price only applies to new lines.
func (s *Service) AddItem(ctx context.Context, userID string, req *AddItemRequest) (*Cart, error) {
	cart, err := s.findOrNewCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if i := findItem(cart.Items, req.ProductID); i >= 0 {
		cart.Items[i].Quantity += req.Quantity
		cart.Items[i].TotalPrice = lineTotal(cart.Items[i].Quantity, cart.Items[i].UnitPrice)
	} else {
		cart.Items = append(cart.Items, CartItem{
			ProductID:  req.ProductID,
			SKU:        req.SKU,
			Name:       req.Name,
			Quantity:   req.Quantity,
			UnitPrice:  req.UnitPrice,
			TotalPrice: lineTotal(req.Quantity, req.UnitPrice),
		})
	}

	return s.persist(ctx, cart)
}

// UpdateQuantity sets the quantity of an existing line. Zero or negative
// removes the line entirely.
func (s *Service) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*Cart, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := findItem(cart.Items, productID)
	if i < 0 {
		return nil, ErrItemNotFound
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	} else {
		cart.Items[i].Quantity = quantity
		cart.Items[i].TotalPrice = lineTotal(quantity, cart.Items[i].UnitPrice)
	}

	return s.persist(ctx, cart)
}

// RemoveItem filters the product out of the cart. Removing an absent
// product is a no-op.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (*Cart, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	return s.persist(ctx, cart)
}

// ApplyDiscount applies a discount code from the configured table.
func (s *Service) ApplyDiscount(ctx context.Context, userID, code string) (*Cart, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ApplyDiscount(cart, code, s.config.Discounts.Codes); err != nil {
		return nil, err
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveDiscount clears any applied discount. Idempotent.
func (s *Service) RemoveDiscount(ctx context.Context, userID string) (*Cart, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	RemoveDiscount(cart)

	cart.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Validate checks the cart is ready for checkout. Inventory is an external
// collaborator, so every present item is reported available.
func (s *Service) Validate(ctx context.Context, userID string) (*ValidationResult, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err == ErrCartNotFound {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	return &ValidationResult{
		IsValid:          true,
		UnavailableItems: []CartItem{},
	}, nil
}

// Save snapshots the current cart into a new named SavedCart document.
func (s *Service) Save(ctx context.Context, userID, name string) (*SavedCart, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err == ErrCartNotFound {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if name == "" {
		name = fmt.Sprintf("Saved Cart %d", time.Now().UnixMilli())
	}

	saved := &SavedCart{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Items:       append([]CartItem(nil), cart.Items...),
		TotalAmount: cart.TotalAmount,
		SavedAt:     time.Now().UTC(),
	}

	if err := s.savedRepo.Insert(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// ListSaved returns the user's saved carts, newest first.
func (s *Service) ListSaved(ctx context.Context, userID string) ([]SavedCart, error) {
	return s.savedRepo.FindByUser(ctx, userID)
}

// Restore replaces the active cart's items and total with a snapshot's.
// The cart's current discount is kept and the final amount recomputed
// against it.
func (s *Service) Restore(ctx context.Context, userID, savedCartID string) (*Cart, error) {
	saved, err := s.savedRepo.FindByID(ctx, savedCartID)
	if err != nil {
		return nil, err
	}
	if saved.UserID != userID {
		return nil, ErrForbidden
	}

	cart, err := s.findOrNewCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Items = append([]CartItem(nil), saved.Items...)
	cart.TotalAmount = saved.TotalAmount
	cart.FinalAmount = cart.TotalAmount - cart.Discount
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// DeleteSaved deletes one of the user's saved carts.
func (s *Service) DeleteSaved(ctx context.Context, userID, savedCartID string) error {
	saved, err := s.savedRepo.FindByID(ctx, savedCartID)
	if err != nil {
		return err
	}
	if saved.UserID != userID {
		return ErrForbidden
	}

	return s.savedRepo.Delete(ctx, savedCartID)
}

// Merge folds guest-session items into the user's cart using the AddItem
// merge rule: an existing line keeps its stored unit price, new lines are
// appended with the guest's price.
func (s *Service) Merge(ctx context.Context, userID string, guestItems []GuestItem) (*Cart, error) {
	cart, err := s.findOrNewCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, guest := range guestItems {
		if i := findItem(cart.Items, guest.ProductID); i >= 0 {
			cart.Items[i].Quantity += guest.Quantity
			cart.Items[i].TotalPrice = lineTotal(cart.Items[i].Quantity, cart.Items[i].UnitPrice)
		} else {
			cart.Items = append(cart.Items, CartItem{
				ProductID:  guest.ProductID,
				SKU:        guest.SKU,
				Name:       guest.Name,
				Quantity:   guest.Quantity,
				UnitPrice:  guest.UnitPrice,
				TotalPrice: lineTotal(guest.Quantity, guest.UnitPrice),
			})
		}
	}

	return s.persist(ctx, cart)
}

// Clear empties the cart and resets all derived amounts and the discount.
func (s *Service) Clear(ctx context.Context, userID string) (*Cart, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Items = []CartItem{}
	cart.TotalAmount = 0
	cart.Discount = 0
	cart.DiscountCode = ""
	cart.FinalAmount = 0
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Private helper methods

func (s *Service) newCart(userID string) *Cart {
	return &Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []CartItem{},
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *Service) findOrNewCart(ctx context.Context, userID string) (*Cart, error) {
	cart, err := s.repo.FindByUser(ctx, userID)
	if err == ErrCartNotFound {
		return s.newCart(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// persist recomputes totals, stamps the cart and writes it back.
func (s *Service) persist(ctx context.Context, cart *Cart) (*Cart, error) {
	Recalculate(cart)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
