package dto

// InventoryView fila aplanada de la vista agregada de inventario.
// CategoryID/SupplierID son null cuando la referencia no existe o no resuelve; sus nombres pasan a "N/A".
type InventoryView struct {
	InventoryID   int64   `json:"inventory_id"`
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Description   *string `json:"description"`
	CategoryID    *int64  `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	SupplierID    *int64  `json:"supplier_id"`
	SupplierName  string  `json:"supplier_name"`
	WarehouseID   int64   `json:"warehouse_id"`
	WarehouseName string  `json:"warehouse_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     string  `json:"unit_price"`
	CostPrice     string  `json:"cost_price"`
	SKU           string  `json:"sku"`
}

// InventoryListResponse respuesta de GET /inventory.
type InventoryListResponse struct {
	Inventories []InventoryView `json:"inventories"`
}

// CreateInventoryRequest acepta product_id|productId y warehouse_id|warehouseId (número o "P001"/"W002").
type CreateInventoryRequest struct {
	ProductID      FlexID  `json:"product_id"`
	ProductIDAlt   FlexID  `json:"productId"`
	WarehouseID    FlexID  `json:"warehouse_id"`
	WarehouseIDAlt FlexID  `json:"warehouseId"`
	Quantity       FlexInt `json:"quantity"`
}

// Product resuelve el alias camelCase.
func (r CreateInventoryRequest) Product() FlexID { return firstID(r.ProductID, r.ProductIDAlt) }

// Warehouse resuelve el alias camelCase.
func (r CreateInventoryRequest) Warehouse() FlexID { return firstID(r.WarehouseID, r.WarehouseIDAlt) }

// UpdateInventoryRequest reemplazo parcial: solo se tocan los campos presentes.
type UpdateInventoryRequest struct {
	Quantity       FlexInt `json:"quantity"`
	WarehouseID    FlexID  `json:"warehouse_id"`
	WarehouseIDAlt FlexID  `json:"warehouseId"`
}

// Warehouse resuelve el alias camelCase.
func (r UpdateInventoryRequest) Warehouse() FlexID { return firstID(r.WarehouseID, r.WarehouseIDAlt) }

// InventoryMutationResponse respuesta de alta/cambio/baja de inventario.
type InventoryMutationResponse struct {
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	InventoryID int64  `json:"inventory_id,omitempty"`
	Message     string `json:"message,omitempty"`
}

func firstID(ids ...FlexID) FlexID {
	for _, id := range ids {
		if id.Valid {
			return id
		}
	}
	return FlexID{}
}
