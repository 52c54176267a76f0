package entity

import "time"

// Inventory existencia de un producto en una bodega. Quantity nunca es negativa.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int
	LastUpdated time.Time
}

// Covers indica si la fila alcanza para descontar n unidades.
func (i *Inventory) Covers(n int) bool {
	return i.Quantity >= n
}
