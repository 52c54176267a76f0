package dto

// CreateProductRequest entrada para crear un producto. Montos como número o "₱1,234.50".
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CategoryID  FlexID  `json:"categoryId"`
	SupplierID  FlexID  `json:"supplierId"`
	UnitPrice   Money   `json:"unitPrice"`
	SKU         string  `json:"sku"`
	CostPrice   Money   `json:"costPrice"`
}

// UpdateProductRequest reemplazo parcial; campos ausentes conservan su valor.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  FlexID  `json:"categoryId"`
	SupplierID  FlexID  `json:"supplierId"`
	UnitPrice   Money   `json:"unitPrice"`
	SKU         *string `json:"sku"`
	CostPrice   Money   `json:"costPrice"`
}

// UpdateProductCategoryRequest cuerpo de POST /products/{id}/update-category.
type UpdateProductCategoryRequest struct {
	CategoryID FlexID `json:"category_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string `json:"id"`
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	SupplierID   string `json:"supplierId"`
	UnitPrice    string `json:"unitPrice"`
	SKU          string `json:"sku"`
	CostPrice    string `json:"costPrice"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ProductEnvelope respuesta de alta/cambio.
type ProductEnvelope struct {
	Success bool             `json:"success"`
	Product *ProductResponse `json:"product"`
}
