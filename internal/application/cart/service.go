package cart

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/yummin/backend/internal/domain/cart"
	"github.com/yummin/backend/internal/domain/catalog"
	"github.com/yummin/backend/internal/domain/shared"
)

// Store persists cart snapshots between requests
type Store interface {
	Save(ctx context.Context, snap cart.Snapshot) error
	Load(ctx context.Context) (cart.Snapshot, error)
	Delete(ctx context.Context) error
}

// Service owns the working cart. The storefront serves a single shared
// cart session, so a mutex serializes mutations; persistence failures
// are logged and swallowed so the cart keeps working in memory.
type Service struct {
	mu      sync.Mutex
	working *cart.Cart
	store   Store
	logger  *zap.Logger
}

// NewService creates the cart service, rehydrating any stored snapshot.
// A missing or unreadable snapshot silently yields an empty cart.
func NewService(ctx context.Context, store Store, logger *zap.Logger) *Service {
	s := &Service{
		working: cart.New(),
		store:   store,
		logger:  logger.Named("cart"),
	}

	snap, err := store.Load(ctx)
	switch {
	case err == nil:
		s.working = cart.Restore(snap)
	case errors.Is(err, shared.ErrNotFound):
		// first run, nothing stored yet
	default:
		s.logger.Warn("Failed to rehydrate cart, starting empty", zap.Error(err))
	}

	return s
}

// View returns the current cart with derived totals
func (s *Service) View(ctx context.Context) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toCartView(s.working)
}

// AddItem adds one unit of the menu item to the cart
func (s *Service) AddItem(ctx context.Context, itemID string) (CartView, error) {
	item, ok := catalog.ItemByID(itemID)
	if !ok {
		return CartView{}, shared.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.AddItem(item)
	s.persist(ctx)
	return toCartView(s.working), nil
}

// UpdateQuantity adjusts a line's quantity by delta, removing the line
// when it drops to zero or below.
func (s *Service) UpdateQuantity(ctx context.Context, itemID string, delta int64) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.AdjustQuantity(itemID, delta)
	s.persist(ctx)
	return toCartView(s.working)
}

// RemoveItem deletes a line from the cart
func (s *Service) RemoveItem(ctx context.Context, itemID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.RemoveItem(itemID)
	s.persist(ctx)
	return toCartView(s.working)
}

// Clear empties the cart and drops the stored snapshot
func (s *Service) Clear(ctx context.Context) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.Clear()
	if err := s.store.Delete(ctx); err != nil {
		s.logger.Warn("Failed to delete cart snapshot", zap.Error(err))
	}
	return toCartView(s.working)
}

// ApplyCoupon applies a coupon code to the cart
func (s *Service) ApplyCoupon(ctx context.Context, code string) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.working.ApplyCoupon(code); err != nil {
		return toCartView(s.working), err
	}
	s.persist(ctx)
	return toCartView(s.working), nil
}

// RemoveCoupon drops the applied coupon
func (s *Service) RemoveCoupon(ctx context.Context) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working.RemoveCoupon()
	s.persist(ctx)
	return toCartView(s.working)
}

// AvailableCoupons lists the coupons customers can apply
func (s *Service) AvailableCoupons() []cart.Coupon {
	return cart.AvailableCoupons()
}

// Current returns a detached copy of the working cart. Checkout reads
// it to build the order without holding the service lock.
func (s *Service) Current(ctx context.Context) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Restore(s.working.Snapshot())
}

// persist writes the snapshot, logging and swallowing failures. Callers
// must hold the mutex.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.working.Snapshot()); err != nil {
		s.logger.Warn("Failed to persist cart snapshot", zap.Error(err))
	}
}
