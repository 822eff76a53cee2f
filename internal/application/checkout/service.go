package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	cartapp "github.com/yummin/backend/internal/application/cart"
	"github.com/yummin/backend/internal/domain/cart"
	"github.com/yummin/backend/internal/domain/order"
	"github.com/yummin/backend/internal/domain/shared"
)

// CartSession is the slice of the cart service checkout needs
type CartSession interface {
	Current(ctx context.Context) *cart.Cart
	Clear(ctx context.Context) cartapp.CartView
}

// Config holds the storefront settings checkout depends on
type Config struct {
	WhatsAppPhone string // digits only, with country code
	OrderIDPrefix string
}

// Service turns the working cart into an order record and a WhatsApp
// hand-off link. The ledger write is fire-and-forget: a persistence
// failure is logged and the checkout still succeeds.
type Service struct {
	mu     sync.Mutex
	carts  CartSession
	orders order.Repository
	cfg    Config
	rng    *rand.Rand
	now    func() time.Time
	logger *zap.Logger
}

// NewService creates a checkout service. The rand source is injected so
// tests can pin order IDs.
func NewService(carts CartSession, orders order.Repository, cfg Config, rng *rand.Rand, logger *zap.Logger) *Service {
	return &Service{
		carts:  carts,
		orders: orders,
		cfg:    cfg,
		rng:    rng,
		now:    time.Now,
		logger: logger.Named("checkout"),
	}
}

// PlaceOrder validates the request, records the order and returns the
// summary with the WhatsApp deep link.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return nil, shared.ErrMissingRequiredField
	}

	method := order.PaymentMethod(strings.ToUpper(strings.TrimSpace(req.PaymentMethod)))
	if !method.IsValid() {
		return nil, shared.ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.carts.Current(ctx)
	if working.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	o := s.buildOrder(working, req, method)
	message := formatMessage(o)
	link := waLink(s.cfg.WhatsAppPhone, message)

	if err := s.orders.Save(ctx, o); err != nil {
		// Deliberate: the customer already has the WhatsApp hand-off,
		// losing the ledger row must not fail the checkout.
		s.logger.Error("Failed to save order to ledger",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}

	s.carts.Clear(ctx)

	return &PlaceOrderResponse{
		OrderID:     o.ID,
		Message:     message,
		WhatsAppURL: link,
		Subtotal:    o.Subtotal,
		Discount:    o.Discount,
		Total:       o.Total,
	}, nil
}

func (s *Service) buildOrder(working *cart.Cart, req PlaceOrderRequest, method order.PaymentMethod) *order.Order {
	o := &order.Order{
		ID:            s.generateOrderID(),
		CustomerName:  strings.TrimSpace(req.Name),
		CustomerPhone: strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		Subtotal:      working.Subtotal().Rupees(),
		Discount:      working.DiscountAmount().Rupees(),
		CouponCode:    working.CouponCode(),
		Total:         working.FinalPrice().Rupees(),
		PaymentMethod: method,
		Instructions:  strings.TrimSpace(req.Instructions),
		Timestamp:     s.now(),
	}
	for _, line := range working.Lines() {
		o.Items = append(o.Items, order.Item{
			ItemID:    line.Item.ID,
			Name:      line.Item.Name,
			UnitPrice: line.Item.Price,
			Quantity:  line.Quantity,
			Category:  line.Item.Category,
		})
	}
	return o
}

// generateOrderID builds a short human-readable code, prefix plus a
// four digit random suffix. Collisions are possible and not guarded
// against.
func (s *Service) generateOrderID() string {
	return fmt.Sprintf("%s-%d", s.cfg.OrderIDPrefix, 1000+s.rng.Intn(9000))
}

// formatMessage renders the WhatsApp order text. Asterisks are WhatsApp
// bold markers.
func formatMessage(o *order.Order) string {
	var b strings.Builder
	b.WriteString("*New Order!* \n\n")
	fmt.Fprintf(&b, "*Customer:* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "*Phone:* %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "*Address:* %s\n\n", o.Address)

	b.WriteString("*Order Details:*\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %dx %s\n", item.Quantity, item.Name)
	}
	b.WriteString("\n")

	if o.Discount > 0 {
		fmt.Fprintf(&b, "*Subtotal:* ₹%d\n", o.Subtotal)
		fmt.Fprintf(&b, "*Discount (%s):* -₹%d\n", o.CouponCode, o.Discount)
	}
	fmt.Fprintf(&b, "*Total:* ₹%d\n", o.Total)
	fmt.Fprintf(&b, "*Payment:* %s\n\n", o.PaymentMethod)
	fmt.Fprintf(&b, "*Instructions:* %s", o.Instructions)
	return b.String()
}

// waLink builds the wa.me deep link with the URL-encoded message
func waLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}
