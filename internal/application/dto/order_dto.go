package dto

// CreateOrderRequest entrada para crear una orden. Status por defecto "Pending".
type CreateOrderRequest struct {
	SupplierID   FlexID  `json:"supplierId"`
	CustomerName *string `json:"customerName"`
	Status       *string `json:"status"`
	TotalAmount  Money   `json:"totalAmount"`
}

// UpdateOrderRequest reemplazo parcial.
type UpdateOrderRequest struct {
	SupplierID   FlexID  `json:"supplierId"`
	CustomerName *string `json:"customerName"`
	Status       *string `json:"status"`
	TotalAmount  Money   `json:"totalAmount"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID           string `json:"id"`
	OrderID      int64  `json:"order_id"`
	OrderDate    string `json:"orderDate"`
	SupplierID   string `json:"supplierId"`
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`
	TotalAmount  string `json:"totalAmount"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type OrderEnvelope struct {
	Success bool           `json:"success"`
	Order   *OrderResponse `json:"order"`
}
