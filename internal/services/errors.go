package services

import "errors"

// Service-level failure taxonomy. Components perform no local recovery:
// every failure surfaces to the caller unchanged, and the HTTP layer maps
// these sentinels to transport responses with errors.Is.
var (
	ErrNotFound            = errors.New("referenced entity does not exist")
	ErrConstraintViolation = errors.New("foreign key or not-null constraint violated")
	ErrUnavailable         = errors.New("menu item is not available")
	ErrEmptyCart           = errors.New("cart is empty for this session")
	ErrOrderClosed         = errors.New("order is cancelled or completed")
	ErrAlreadyPaid         = errors.New("order is already paid")
)
