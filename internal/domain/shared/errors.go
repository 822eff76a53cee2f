package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound             = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput         = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidCoupon        = NewDomainError("INVALID_COUPON", "Coupon code is not valid")
	ErrEmptyCart            = NewDomainError("EMPTY_CART", "Cart is empty")
	ErrMissingRequiredField = NewDomainError("MISSING_REQUIRED_FIELD", "Required field is missing")
	ErrInvalidPaymentMethod = NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not supported")
)
