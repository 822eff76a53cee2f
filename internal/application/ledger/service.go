package ledger

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yummin/backend/internal/domain/order"
)

// Service exposes the order ledger to the owner views. Reads fail soft:
// a storage error is logged and surfaces as an empty ledger.
type Service struct {
	orders order.Repository
	logger *zap.Logger
}

// NewService creates a ledger service
func NewService(orders order.Repository, logger *zap.Logger) *Service {
	return &Service{orders: orders, logger: logger.Named("ledger")}
}

// List returns the whole ledger, oldest first. Returns an empty slice
// on storage failure.
func (s *Service) List(ctx context.Context) []*order.Order {
	all, err := s.orders.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to read order ledger", zap.Error(err))
		return nil
	}
	return all
}

// Get returns a single order by its ID. Unlike the list reads a lookup
// miss is not soft: shared.ErrNotFound is returned for unknown IDs.
func (s *Service) Get(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListRange returns orders with timestamps in [from, to], oldest first
func (s *Service) ListRange(ctx context.Context, from, to time.Time) []*order.Order {
	orders, err := s.orders.FindByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Failed to read order ledger range", zap.Error(err))
		return nil
	}
	return orders
}

// Clear wipes the ledger. Irreversible.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.orders.Clear(ctx); err != nil {
		s.logger.Error("Failed to clear order ledger", zap.Error(err))
		return err
	}
	s.logger.Info("Order ledger cleared")
	return nil
}

// Seed replaces the ledger with generated demo orders and returns how
// many were written.
func (s *Service) Seed(ctx context.Context, gen *SeedGenerator) (int, error) {
	orders := gen.Generate()
	if err := s.orders.ReplaceAll(ctx, orders); err != nil {
		s.logger.Error("Failed to seed order ledger", zap.Error(err))
		return 0, err
	}
	s.logger.Info("Seeded demo orders", zap.Int("count", len(orders)))
	return len(orders), nil
}
