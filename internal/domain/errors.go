package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSKUCodeRequired      = errors.New("sku code required")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrInventoryUnavailable = errors.New("inventory service unavailable")
	ErrOrderNotFound        = errors.New("order not found")
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
	ErrInvalidID            = errors.New("invalid id")
)

// OutOfStockError is a business rejection: the inventory service answered,
// and the answer was no. It carries the SKU so callers can report which item
// was rejected.
type OutOfStockError struct {
	SKUCode string
}

func (e OutOfStockError) Error() string {
	return fmt.Sprintf("sku %s is not in stock", e.SKUCode)
}
