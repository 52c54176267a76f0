package entity

import "github.com/shopspring/decimal"

// OrderItem línea de una orden. Subtotal = Quantity * UnitPrice al crearse.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.NullDecimal
}

// ComputeSubtotal fija Subtotal a partir de cantidad y precio unitario.
func (i *OrderItem) ComputeSubtotal() {
	i.Subtotal = decimal.NewNullDecimal(i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))))
}
