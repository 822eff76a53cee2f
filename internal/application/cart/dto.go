package cart

import (
	"github.com/yummin/backend/internal/domain/cart"
	"github.com/yummin/backend/internal/domain/catalog"
)

// CartLine is one cart entry with its derived line total
type CartLine struct {
	Item      catalog.MenuItem `json:"item"`
	Quantity  int64            `json:"quantity"`
	LineTotal int64            `json:"line_total"`
}

// AppliedCoupon describes the coupon currently on the cart
type AppliedCoupon struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CartView is the cart with all derived totals computed
type CartView struct {
	Lines      []CartLine     `json:"lines"`
	TotalItems int64          `json:"total_items"`
	Subtotal   int64          `json:"subtotal"`
	Coupon     *AppliedCoupon `json:"coupon,omitempty"`
	Discount   int64          `json:"discount"`
	FinalPrice int64          `json:"final_price"`
}

func toCartView(c *cart.Cart) CartView {
	view := CartView{
		Lines:      make([]CartLine, 0, len(c.Lines())),
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal().Rupees(),
		Discount:   c.DiscountAmount().Rupees(),
		FinalPrice: c.FinalPrice().Rupees(),
	}
	for _, line := range c.Lines() {
		view.Lines = append(view.Lines, CartLine{
			Item:      line.Item,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal().Rupees(),
		})
	}
	if coupon, ok := c.AppliedCoupon(); ok {
		view.Coupon = &AppliedCoupon{Code: coupon.Code, Description: coupon.Description}
	}
	return view
}
