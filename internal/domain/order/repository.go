package order

import (
	"context"
	"time"
)

// Repository is the order ledger. Orders are append-only; the only
// mutations besides Save are wholesale resets used by demo seeding.
type Repository interface {
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindAll(ctx context.Context) ([]*Order, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*Order, error)
	Clear(ctx context.Context) error
	ReplaceAll(ctx context.Context, orders []*Order) error
}
