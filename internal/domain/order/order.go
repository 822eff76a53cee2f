package order

import (
	"time"

	"github.com/yummin/backend/internal/domain/catalog"
)

// PaymentMethod identifies how the customer pays on delivery
type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCOD  PaymentMethod = "COD"
	PaymentCard PaymentMethod = "CARD"
)

// IsValid checks if the payment method is supported
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentUPI, PaymentCOD, PaymentCard:
		return true
	}
	return false
}

// String returns the string representation of the payment method
func (p PaymentMethod) String() string {
	return string(p)
}

// Item is a line snapshot taken at checkout. It copies name, price and
// category so later menu edits never rewrite history.
type Item struct {
	ItemID    string           `json:"item_id"`
	Name      string           `json:"name"`
	UnitPrice int64            `json:"unit_price"`
	Quantity  int64            `json:"quantity"`
	Category  catalog.Category `json:"category"`
}

// LineTotal returns the rupee total for this line
func (i Item) LineTotal() int64 {
	return i.UnitPrice * i.Quantity
}

// Order is one completed checkout, immutable once recorded
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Address       string        `json:"address"`
	Items         []Item        `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	Discount      int64         `json:"discount"`
	CouponCode    string        `json:"coupon_code,omitempty"`
	Total         int64         `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Instructions  string        `json:"instructions,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

// TotalItems returns the unit count across all lines
func (o Order) TotalItems() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
