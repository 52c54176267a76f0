package dto

// OrderDocument datos ya formateados para el PDF de una orden.
type OrderDocument struct {
	Order    OrderResponse
	Supplier string // nombre del proveedor; vacío si no hay o no resuelve
	Lines    []OrderDocumentLine
	Total    string // suma de subtotales de las líneas
}

// OrderDocumentLine una línea del documento.
type OrderDocumentLine struct {
	ItemID      string
	ProductID   string
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   string
	Subtotal    string
}
