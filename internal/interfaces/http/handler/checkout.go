package handler

import (
	"github.com/gin-gonic/gin"

	checkoutapp "github.com/yummin/backend/internal/application/checkout"
	"github.com/yummin/backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles order placement
type CheckoutHandler struct {
	BaseHandler
	checkout *checkoutapp.Service
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkout *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// RegisterRoutes registers checkout routes on the given group
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.PlaceOrder)
}

// PlaceOrderRequest carries the delivery form and payment selection
type PlaceOrderRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Phone         string `json:"phone" binding:"required,max=20"`
	Address       string `json:"address" binding:"required,max=500"`
	Instructions  string `json:"instructions" binding:"max=500"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// PlaceOrder converts the cart into an order and returns the WhatsApp
// hand-off link
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.checkout.PlaceOrder(c.Request.Context(), checkoutapp.PlaceOrderRequest{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Instructions:  req.Instructions,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}
