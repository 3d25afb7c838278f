package checkout

import "errors"

var (
	ErrEmptyCart                = errors.New("cart is empty")
	ErrIncompleteCustomerInfo   = errors.New("phone and district are required")
	ErrDestinationNotConfigured = errors.New("order destination number is not configured")
)
