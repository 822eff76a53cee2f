package checkout

// PlaceOrderRequest carries the delivery form and payment selection
type PlaceOrderRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"payment_method"`
}

// PlaceOrderResponse is the checkout result handed back to the customer
type PlaceOrderResponse struct {
	OrderID     string `json:"order_id"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
	Subtotal    int64  `json:"subtotal"`
	Discount    int64  `json:"discount"`
	Total       int64  `json:"total"`
}
