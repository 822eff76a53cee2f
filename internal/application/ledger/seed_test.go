package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yummin/backend/internal/domain/cart"
	"github.com/yummin/backend/internal/domain/shared/valueobject"
)

func newTestGenerator(seed int64, count int) *SeedGenerator {
	gen := NewSeedGenerator(rand.New(rand.NewSource(seed)), "YUM", count)
	gen.now = func() time.Time {
		return time.Date(2026, 8, 31, 20, 0, 0, 0, time.Local)
	}
	return gen
}

func TestSeedGenerator_Count(t *testing.T) {
	orders := newTestGenerator(42, 30).Generate()
	assert.Len(t, orders, 30)
}

func TestSeedGenerator_OrdersAreConsistent(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.Local)
	orders := newTestGenerator(42, 30).Generate()

	for _, o := range orders {
		require.NotEmpty(t, o.Items, o.ID)
		assert.LessOrEqual(t, len(o.Items), 3, o.ID)

		var subtotal int64
		for _, item := range o.Items {
			assert.GreaterOrEqual(t, item.Quantity, int64(1))
			assert.LessOrEqual(t, item.Quantity, int64(2))
			subtotal += item.LineTotal()
		}
		assert.Equal(t, subtotal, o.Subtotal, o.ID)
		assert.Equal(t, o.Subtotal-o.Discount, o.Total, o.ID)
		assert.GreaterOrEqual(t, o.Total, int64(0), o.ID)

		if o.CouponCode == "" {
			assert.Zero(t, o.Discount, o.ID)
		} else {
			coupon, ok := cart.FindCoupon(o.CouponCode)
			require.True(t, ok, o.ID)
			assert.Equal(t, coupon.Discount(valueobject.NewMoney(o.Subtotal)).Rupees(), o.Discount, o.ID)
		}

		assert.True(t, o.PaymentMethod.IsValid(), o.ID)

		// within the trailing seven days, during shop hours
		assert.False(t, o.Timestamp.After(now), o.ID)
		assert.False(t, o.Timestamp.Before(now.Add(-8*24*time.Hour)), o.ID)
	}
}

func TestSeedGenerator_SortedOldestFirst(t *testing.T) {
	orders := newTestGenerator(7, 30).Generate()
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].Timestamp.Before(orders[i-1].Timestamp))
	}
}

func TestSeedGenerator_EarlyOrdersFavorVIPPool(t *testing.T) {
	orders := newTestGenerator(42, 30).Generate()

	// the first third of generated orders is confined to five phones,
	// so at least one customer must cross the VIP threshold
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.CustomerPhone]++
	}

	var maxCount int
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	assert.GreaterOrEqual(t, maxCount, 3)
}

func TestSeedGenerator_Deterministic(t *testing.T) {
	a := newTestGenerator(99, 10).Generate()
	b := newTestGenerator(99, 10).Generate()

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].Total, b[i].Total)
		assert.Equal(t, a[i].CustomerPhone, b[i].CustomerPhone)
	}
}
