package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yummin/backend/internal/domain/order"
	"github.com/yummin/backend/internal/domain/report"
)

// Service assembles the owner dashboard from the ledger. The whole
// snapshot is recomputed on every read; a ledger read failure yields a
// zero-valued dashboard instead of an error.
type Service struct {
	orders order.Repository
	now    func() time.Time
	logger *zap.Logger
}

// NewService creates a dashboard service
func NewService(orders order.Repository, logger *zap.Logger) *Service {
	return &Service{
		orders: orders,
		now:    time.Now,
		logger: logger.Named("dashboard"),
	}
}

// Build computes the full analytics snapshot
func (s *Service) Build(ctx context.Context) report.Dashboard {
	all, err := s.orders.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to read ledger for dashboard", zap.Error(err))
		all = nil
	}
	return report.Build(all, s.now())
}
