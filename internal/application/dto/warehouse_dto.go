package dto

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID          string `json:"id"`
	WarehouseID int64  `json:"warehouse_id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// WarehouseListResponse lista de bodegas.
type WarehouseListResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
}

type WarehouseEnvelope struct {
	Success   bool               `json:"success"`
	Warehouse *WarehouseResponse `json:"warehouse"`
}
