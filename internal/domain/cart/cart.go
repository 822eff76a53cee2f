package cart

import (
	"github.com/yummin/backend/internal/domain/catalog"
	"github.com/yummin/backend/internal/domain/shared"
	"github.com/yummin/backend/internal/domain/shared/valueobject"
)

// Line is one cart entry: a menu item and how many of it
type Line struct {
	Item     catalog.MenuItem `json:"item"`
	Quantity int64            `json:"quantity"`
}

// LineTotal returns the line's price contribution
func (l Line) LineTotal() valueobject.Money {
	return valueobject.NewMoney(l.Item.Price).MultiplyByInt(l.Quantity)
}

// Cart is the shopper's working order. Lines keep insertion order, one
// line per menu item. Totals are derived, never stored.
type Cart struct {
	lines      []Line
	couponCode string
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Lines returns the cart lines in insertion order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// CouponCode returns the applied coupon code, empty when none is applied
func (c *Cart) CouponCode() string {
	return c.couponCode
}

// IsEmpty returns true when the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem adds one unit of the item, merging into an existing line for
// the same item.
func (c *Cart) AddItem(item catalog.MenuItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// RemoveItem deletes the line for the given item id. Removing an item
// that is not in the cart is a no-op.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// AdjustQuantity changes the line quantity for the given item id by
// delta. The line is removed when the resulting quantity drops to zero
// or below. Adjusting an item not in the cart is a no-op.
func (c *Cart) AdjustQuantity(itemID string, delta int64) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity += delta
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// Clear empties the cart and drops any applied coupon
func (c *Cart) Clear() {
	c.lines = nil
	c.couponCode = ""
}

// ApplyCoupon applies the coupon with the given code. The code is
// normalized before lookup; applying the same coupon twice is
// idempotent. Fails on an empty cart or an unknown code.
func (c *Cart) ApplyCoupon(code string) (Coupon, error) {
	if c.IsEmpty() {
		return Coupon{}, shared.ErrEmptyCart
	}
	coupon, ok := FindCoupon(code)
	if !ok {
		return Coupon{}, shared.ErrInvalidCoupon
	}
	c.couponCode = coupon.Code
	return coupon, nil
}

// RemoveCoupon drops the applied coupon, if any
func (c *Cart) RemoveCoupon() {
	c.couponCode = ""
}

// AppliedCoupon returns the applied coupon. The second return is false
// when no coupon is applied.
func (c *Cart) AppliedCoupon() (Coupon, bool) {
	if c.couponCode == "" {
		return Coupon{}, false
	}
	return FindCoupon(c.couponCode)
}

// TotalItems returns the total unit count across all lines
func (c *Cart) TotalItems() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal returns the sum of all line totals before discounts
func (c *Cart) Subtotal() valueobject.Money {
	total := valueobject.Zero()
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// DiscountAmount returns the rupee discount for the applied coupon,
// zero when no coupon is applied.
func (c *Cart) DiscountAmount() valueobject.Money {
	coupon, ok := c.AppliedCoupon()
	if !ok {
		return valueobject.Zero()
	}
	return coupon.Discount(c.Subtotal())
}

// FinalPrice returns the payable total after the discount
func (c *Cart) FinalPrice() valueobject.Money {
	return c.Subtotal().Subtract(c.DiscountAmount())
}

// Snapshot captures the cart state for persistence
type Snapshot struct {
	Lines      []Line `json:"lines"`
	CouponCode string `json:"coupon_code,omitempty"`
}

// Snapshot returns a persistable copy of the cart state
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{Lines: c.Lines(), CouponCode: c.couponCode}
}

// Restore rebuilds a cart from a snapshot. Lines whose item no longer
// exists in the catalog are dropped, and line items are refreshed from
// the catalog so stale snapshots pick up current prices. A coupon code
// that no longer resolves is dropped too.
func Restore(snap Snapshot) *Cart {
	c := New()
	for _, l := range snap.Lines {
		item, ok := catalog.ItemByID(l.Item.ID)
		if !ok || l.Quantity <= 0 {
			continue
		}
		c.lines = append(c.lines, Line{Item: item, Quantity: l.Quantity})
	}
	if coupon, ok := FindCoupon(snap.CouponCode); ok {
		c.couponCode = coupon.Code
	}
	return c
}
