package dto

// CreateOrderItemRequest cuerpo de POST /api/order-items/create.
type CreateOrderItemRequest struct {
	OrderID   FlexID  `json:"orderId"`
	ProductID FlexID  `json:"productId"`
	Quantity  FlexInt `json:"quantity"`
	UnitPrice Money   `json:"unitPrice"`
}

// UpdateOrderItemRequest reemplazo parcial de campos; no mueve stock.
type UpdateOrderItemRequest struct {
	OrderID   FlexID  `json:"orderId"`
	ProductID FlexID  `json:"productId"`
	Quantity  FlexInt `json:"quantity"`
	UnitPrice Money   `json:"unitPrice"`
}

// OrderItemResponse salida de una línea de orden.
type OrderItemResponse struct {
	ID          string `json:"id"`
	OrderItemID int64  `json:"order_item_id"`
	OrderID     string `json:"orderId"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Subtotal    string `json:"subtotal"`
}

type OrderItemListResponse struct {
	OrderItems []OrderItemResponse `json:"orderItems"`
}

type OrderItemEnvelope struct {
	Success   bool               `json:"success"`
	OrderItem *OrderItemResponse `json:"orderItem"`
}
