package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Catalog errors
	ErrCategoryNotFound    = "CATEGORY_NOT_FOUND"
	ErrMenuItemNotFound    = "MENU_ITEM_NOT_FOUND"
	ErrMenuItemUnavailable = "MENU_ITEM_UNAVAILABLE"

	// Cart errors
	ErrCartItemNotFound = "CART_ITEM_NOT_FOUND"
	ErrCartEmpty        = "CART_EMPTY"

	// Order errors
	ErrOrderNotFound = "ORDER_NOT_FOUND"
	ErrOrderClosed   = "ORDER_CLOSED"

	// Payment errors
	ErrPaymentNotFound  = "PAYMENT_NOT_FOUND"
	ErrOrderAlreadyPaid = "ORDER_ALREADY_PAID"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
