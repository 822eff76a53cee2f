package checkout

import (
	"context"
	"errors"
	"math/rand"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartapp "github.com/yummin/backend/internal/application/cart"
	"github.com/yummin/backend/internal/domain/cart"
	"github.com/yummin/backend/internal/domain/catalog"
	"github.com/yummin/backend/internal/domain/order"
	"github.com/yummin/backend/internal/domain/shared"
)

// fakeCartSession wraps a cart for checkout tests
type fakeCartSession struct {
	working *cart.Cart
	cleared bool
}

func (f *fakeCartSession) Current(ctx context.Context) *cart.Cart {
	return cart.Restore(f.working.Snapshot())
}

func (f *fakeCartSession) Clear(ctx context.Context) cartapp.CartView {
	f.working.Clear()
	f.cleared = true
	return cartapp.CartView{}
}

// fakeOrderRepo records saves and can fail on demand
type fakeOrderRepo struct {
	saved   []*order.Order
	saveErr error
}

func (f *fakeOrderRepo) Save(ctx context.Context, o *order.Order) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, o)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*order.Order, error) {
	return nil, shared.ErrNotFound
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*order.Order, error) {
	return f.saved, nil
}

func (f *fakeOrderRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) Clear(ctx context.Context) error { return nil }

func (f *fakeOrderRepo) ReplaceAll(ctx context.Context, orders []*order.Order) error { return nil }

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	for _, id := range []string{"1", "2"} {
		item, ok := catalog.ItemByID(id)
		require.True(t, ok)
		c.AddItem(item)
	}
	return c
}

func validRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		Name:          "Rajesh Kumar",
		Phone:         "9876543210",
		Address:       "123 Mall Road, Amritsar",
		Instructions:  "Please ring the bell",
		PaymentMethod: "UPI",
	}
}

func newTestService(session CartSession, repo order.Repository) *Service {
	cfg := Config{WhatsAppPhone: "918877116603", OrderIDPrefix: "YUM"}
	return NewService(session, repo, cfg, rand.New(rand.NewSource(1)), zap.NewNop())
}

func TestPlaceOrder_Success(t *testing.T) {
	session := &fakeCartSession{working: filledCart(t)}
	repo := &fakeOrderRepo{}
	svc := newTestService(session, repo)

	resp, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.OrderID, "YUM-"), resp.OrderID)
	assert.Equal(t, int64(238), resp.Subtotal)
	assert.Equal(t, int64(238), resp.Total)
	assert.True(t, session.cleared)

	require.Len(t, repo.saved, 1)
	saved := repo.saved[0]
	assert.Equal(t, resp.OrderID, saved.ID)
	assert.Equal(t, order.PaymentUPI, saved.PaymentMethod)
	require.Len(t, saved.Items, 2)
	assert.Equal(t, "Its So Chocolatey", saved.Items[0].Name)
}

func TestPlaceOrder_MessageContent(t *testing.T) {
	session := &fakeCartSession{working: filledCart(t)}
	session.working.AdjustQuantity("1", 1) // 2x item 1
	_, err := session.working.ApplyCoupon("WELCOME10")
	require.NoError(t, err)

	svc := newTestService(session, &fakeOrderRepo{})

	resp, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	msg := resp.Message
	assert.Contains(t, msg, "*New Order!*")
	assert.Contains(t, msg, "*Customer:* Rajesh Kumar")
	assert.Contains(t, msg, "*Phone:* 9876543210")
	assert.Contains(t, msg, "- 2x Its So Chocolatey")
	assert.Contains(t, msg, "- 1x Chocolate Oreo")
	// subtotal 347, 10% -> 35 off, total 312
	assert.Contains(t, msg, "*Subtotal:* ₹347")
	assert.Contains(t, msg, "*Discount (WELCOME10):* -₹35")
	assert.Contains(t, msg, "*Total:* ₹312")
	assert.Contains(t, msg, "*Payment:* UPI")
	assert.Contains(t, msg, "*Instructions:* Please ring the bell")
}

func TestPlaceOrder_WhatsAppLink(t *testing.T) {
	session := &fakeCartSession{working: filledCart(t)}
	svc := newTestService(session, &fakeOrderRepo{})

	resp, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/918877116603?text="), resp.WhatsAppURL)

	parsed, err := url.Parse(resp.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, resp.Message, parsed.Query().Get("text"))
}

func TestPlaceOrder_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlaceOrderRequest)
	}{
		{"missing name", func(r *PlaceOrderRequest) { r.Name = "  " }},
		{"missing phone", func(r *PlaceOrderRequest) { r.Phone = "" }},
		{"missing address", func(r *PlaceOrderRequest) { r.Address = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &fakeCartSession{working: filledCart(t)}
			svc := newTestService(session, &fakeOrderRepo{})

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.PlaceOrder(context.Background(), req)
			assert.ErrorIs(t, err, shared.ErrMissingRequiredField)
			assert.False(t, session.cleared)
		})
	}
}

func TestPlaceOrder_InvalidPaymentMethod(t *testing.T) {
	session := &fakeCartSession{working: filledCart(t)}
	svc := newTestService(session, &fakeOrderRepo{})

	req := validRequest()
	req.PaymentMethod = "CHEQUE"

	_, err := svc.PlaceOrder(context.Background(), req)
	assert.ErrorIs(t, err, shared.ErrInvalidPaymentMethod)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	session := &fakeCartSession{working: cart.New()}
	svc := newTestService(session, &fakeOrderRepo{})

	_, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.ErrorIs(t, err, shared.ErrEmptyCart)
}

func TestPlaceOrder_LedgerFailureStillSucceeds(t *testing.T) {
	session := &fakeCartSession{working: filledCart(t)}
	repo := &fakeOrderRepo{saveErr: errors.New("disk full")}
	svc := newTestService(session, repo)

	resp, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.WhatsAppURL)
	assert.True(t, session.cleared)
}

func TestPlaceOrder_NoInstructionsLine(t *testing.T) {
	session := &fakeCartSession{working: filledCart(t)}
	svc := newTestService(session, &fakeOrderRepo{})

	req := validRequest()
	req.Instructions = ""

	resp, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(resp.Message, "*Instructions:* "))
}
