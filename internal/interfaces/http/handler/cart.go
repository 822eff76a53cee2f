package handler

import (
	"github.com/gin-gonic/gin"

	cartapp "github.com/yummin/backend/internal/application/cart"
)

// CartHandler handles cart-related API endpoints
type CartHandler struct {
	BaseHandler
	carts *cartapp.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts *cartapp.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// RegisterRoutes registers cart routes on the given group
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.View)
		cart.DELETE("", h.Clear)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:id", h.UpdateQuantity)
		cart.DELETE("/items/:id", h.RemoveItem)
		cart.GET("/coupons", h.ListCoupons)
		cart.POST("/coupon", h.ApplyCoupon)
		cart.DELETE("/coupon", h.RemoveCoupon)
	}
}

// AddItemRequest adds one unit of a menu item to the cart
type AddItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// UpdateQuantityRequest adjusts a cart line's quantity by delta.
// A resulting quantity of zero or below removes the line.
type UpdateQuantityRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

// ApplyCouponRequest applies a coupon code to the cart
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// View returns the current cart with derived totals
func (h *CartHandler) View(c *gin.Context) {
	h.Success(c, h.carts.View(c.Request.Context()))
}

// AddItem adds one unit of a menu item to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	view, err := h.carts.AddItem(c.Request.Context(), req.ItemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, view)
}

// UpdateQuantity adjusts a cart line's quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.Success(c, h.carts.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Delta))
}

// RemoveItem deletes a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.Success(c, h.carts.RemoveItem(c.Request.Context(), c.Param("id")))
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.Success(c, h.carts.Clear(c.Request.Context()))
}

// ListCoupons returns the coupons customers can apply
func (h *CartHandler) ListCoupons(c *gin.Context) {
	h.Success(c, h.carts.AvailableCoupons())
}

// ApplyCoupon applies a coupon code to the cart
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	view, err := h.carts.ApplyCoupon(c.Request.Context(), req.Code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, view)
}

// RemoveCoupon drops the applied coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	h.Success(c, h.carts.RemoveCoupon(c.Request.Context()))
}
