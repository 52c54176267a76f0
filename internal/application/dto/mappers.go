package dto

import (
	"strconv"

	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/pkg/format"
)

// ProductFromEntity categoryName vacío cuando la categoría no resuelve.
func ProductFromEntity(p *entity.Product, categoryName string) *ProductResponse {
	return &ProductResponse{
		ID:           format.ID(format.PrefixProduct, p.ID),
		ProductID:    p.ID,
		Name:         p.Name,
		Description:  deref(p.Description),
		CategoryID:   idString(p.CategoryID),
		CategoryName: categoryName,
		SupplierID:   idString(p.SupplierID),
		UnitPrice:    format.Peso(p.UnitPrice),
		SKU:          p.SKU,
		CostPrice:    format.PesoNull(p.CostPrice),
		CreatedAt:    format.DateTime(p.CreatedAt),
		UpdatedAt:    format.DateTime(p.UpdatedAt),
	}
}

func CategoryFromEntity(c *entity.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          format.ID(format.PrefixCategory, c.ID),
		CategoryID:  c.ID,
		Name:        c.Name,
		Description: deref(c.Description),
	}
}

func SupplierFromEntity(s *entity.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:         format.ID(format.PrefixSupplier, s.ID),
		SupplierID: s.ID,
		Name:       s.Name,
		Email:      deref(s.Email),
		Phone:      deref(s.Phone),
		Address:    deref(s.Address),
		CreatedAt:  format.DateTime(s.CreatedAt),
		UpdatedAt:  format.DateTime(s.UpdatedAt),
	}
}

func WarehouseFromEntity(w *entity.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		ID:          format.ID(format.PrefixWarehouse, w.ID),
		WarehouseID: w.ID,
		Name:        w.Name,
		Location:    deref(w.Location),
		CreatedAt:   format.DateTime(w.CreatedAt),
		UpdatedAt:   format.DateTime(w.UpdatedAt),
	}
}

// OrderFromEntity status vacío se presenta como "Pending".
func OrderFromEntity(o *entity.Order) *OrderResponse {
	status := o.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	return &OrderResponse{
		ID:           format.ID(format.PrefixOrder, o.ID),
		OrderID:      o.ID,
		OrderDate:    format.DateTime(o.OrderDate),
		SupplierID:   idString(o.SupplierID),
		CustomerName: deref(o.CustomerName),
		Status:       status,
		TotalAmount:  format.PesoNull(o.TotalAmount),
	}
}

func OrderItemFromEntity(it *entity.OrderItem) *OrderItemResponse {
	return &OrderItemResponse{
		ID:          format.ID(format.PrefixOrderItem, it.ID),
		OrderItemID: it.ID,
		OrderID:     strconv.FormatInt(it.OrderID, 10),
		ProductID:   strconv.FormatInt(it.ProductID, 10),
		Quantity:    it.Quantity,
		UnitPrice:   format.Peso(it.UnitPrice),
		Subtotal:    format.PesoNull(it.Subtotal),
	}
}

func UserFromEntity(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:       format.ID(format.PrefixUser, u.ID),
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func idString(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
