package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending estado inicial de una orden cuando no se indica otro.
const OrderStatusPending = "Pending"

// Order cabecera de una orden; agrupa OrderItems por order_id.
type Order struct {
	ID           int64
	OrderDate    time.Time
	SupplierID   *int64
	CustomerName *string
	Status       string
	TotalAmount  decimal.NullDecimal
}
