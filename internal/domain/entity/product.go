package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. SKU es único.
// CategoryID y SupplierID son referencias opcionales (nil = sin asignar).
type Product struct {
	ID          int64
	Name        string
	Description *string
	CategoryID  *int64
	SupplierID  *int64
	UnitPrice   decimal.Decimal
	SKU         string
	CostPrice   decimal.NullDecimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
