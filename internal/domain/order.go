package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a placed order for a single SKU. TotalPrice is the unit
// price from the request multiplied by the quantity.
type Order struct {
	ID          string
	OrderNumber string
	SKUCode     string
	Quantity    int
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
}
