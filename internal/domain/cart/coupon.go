package cart

import (
	"strings"

	"github.com/yummin/backend/internal/domain/shared/valueobject"
)

// CouponKind distinguishes how a coupon's value is applied
type CouponKind string

const (
	CouponPercentage CouponKind = "percentage"
	CouponFlat       CouponKind = "flat"
)

// IsValid checks if the coupon kind is supported
func (k CouponKind) IsValid() bool {
	switch k {
	case CouponPercentage, CouponFlat:
		return true
	}
	return false
}

// String returns the string representation of the coupon kind
func (k CouponKind) String() string {
	return string(k)
}

// Coupon is a fixed promotional code. For percentage coupons Value is the
// percentage; for flat coupons it is the rupee amount taken off.
type Coupon struct {
	Code        string     `json:"code"`
	Kind        CouponKind `json:"kind"`
	Value       int64      `json:"value"`
	Description string     `json:"description"`
}

// Discount returns the rupee amount this coupon takes off the given
// subtotal. A percentage coupon rounds to whole rupees; a flat coupon
// never exceeds the subtotal.
func (c Coupon) Discount(subtotal valueobject.Money) valueobject.Money {
	switch c.Kind {
	case CouponPercentage:
		return subtotal.Percentage(c.Value)
	case CouponFlat:
		return valueobject.NewMoney(c.Value).Min(subtotal)
	}
	return valueobject.Zero()
}

// coupons is the fixed promotional set
var coupons = []Coupon{
	{Code: "WELCOME10", Kind: CouponPercentage, Value: 10, Description: "10% off on your first order"},
	{Code: "FLAT50", Kind: CouponFlat, Value: 50, Description: "Flat ₹50 off on your order"},
}

// NormalizeCode canonicalizes user-entered coupon codes
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FindCoupon looks up a coupon by code. Codes are matched
// case-insensitively after trimming whitespace.
func FindCoupon(code string) (Coupon, bool) {
	normalized := NormalizeCode(code)
	for _, c := range coupons {
		if c.Code == normalized {
			return c, true
		}
	}
	return Coupon{}, false
}

// AvailableCoupons returns all coupons customers can apply
func AvailableCoupons() []Coupon {
	out := make([]Coupon, len(coupons))
	copy(out, coupons)
	return out
}
