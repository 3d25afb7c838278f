package cart

import "errors"

var (
	ErrInvalidProduct   = errors.New("invalid product")
	ErrItemNotFound     = errors.New("item not in cart")
	ErrPersistenceWrite = errors.New("cart could not be saved")
	ErrPersistenceRead  = errors.New("cart could not be read")
)
