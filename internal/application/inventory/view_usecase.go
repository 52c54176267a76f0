package inventory

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// NotAvailable marcador para categoría o proveedor sin resolver.
const NotAvailable = "N/A"

var tracer = otel.Tracer("github.com/jhoicas/inventory-orders-api/internal/application/inventory")

// ViewUseCase arma la vista agregada de inventario (producto, categoría, proveedor y bodega por fila).
// Hace una consulta por tabla, nunca una por fila.
type ViewUseCase struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	categoryRepo  repository.CategoryRepository
	supplierRepo  repository.SupplierRepository
}

// NewViewUseCase construye el caso de uso.
func NewViewUseCase(
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ViewUseCase {
	return &ViewUseCase{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		categoryRepo:  categoryRepo,
		supplierRepo:  supplierRepo,
	}
}

// ListInventoryViews devuelve una fila por inventario, en el orden de la consulta.
// Las filas cuyo producto o bodega no existen se omiten.
func (uc *ViewUseCase) ListInventoryViews(ctx context.Context) ([]dto.InventoryView, error) {
	ctx, span := tracer.Start(ctx, "inventory.ListInventoryViews")
	defer span.End()

	rows, err := uc.inventoryRepo.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	productIDs := make([]int64, 0, len(rows))
	warehouseIDs := make([]int64, 0, len(rows))
	for _, inv := range rows {
		productIDs = append(productIDs, inv.ProductID)
		warehouseIDs = append(warehouseIDs, inv.WarehouseID)
	}

	products, err := fetchByIDs(ctx, distinct(productIDs), uc.productRepo.ListByIDs, func(p *entity.Product) int64 { return p.ID })
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	warehouses, err := fetchByIDs(ctx, distinct(warehouseIDs), uc.warehouseRepo.ListByIDs, func(w *entity.Warehouse) int64 { return w.ID })
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var categoryIDs, supplierIDs []int64
	for _, p := range products {
		if p.CategoryID != nil {
			categoryIDs = append(categoryIDs, *p.CategoryID)
		}
		if p.SupplierID != nil {
			supplierIDs = append(supplierIDs, *p.SupplierID)
		}
	}
	categories, err := fetchByIDs(ctx, distinct(categoryIDs), uc.categoryRepo.ListByIDs, func(c *entity.Category) int64 { return c.ID })
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	suppliers, err := fetchByIDs(ctx, distinct(supplierIDs), uc.supplierRepo.ListByIDs, func(s *entity.Supplier) int64 { return s.ID })
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	views := make([]dto.InventoryView, 0, len(rows))
	for _, inv := range rows {
		product, okP := products[inv.ProductID]
		warehouse, okW := warehouses[inv.WarehouseID]
		if !okP || !okW {
			continue
		}
		view := dto.InventoryView{
			InventoryID:   inv.ID,
			ProductID:     product.ID,
			ProductName:   product.Name,
			Description:   product.Description,
			CategoryName:  NotAvailable,
			SupplierName:  NotAvailable,
			WarehouseID:   warehouse.ID,
			WarehouseName: warehouse.Name,
			Quantity:      inv.Quantity,
			UnitPrice:     product.UnitPrice.StringFixed(2),
			CostPrice:     "0",
			SKU:           product.SKU,
		}
		if product.CategoryID != nil {
			if c, ok := categories[*product.CategoryID]; ok {
				view.CategoryID = &c.ID
				view.CategoryName = c.Name
			}
		}
		if product.SupplierID != nil {
			if s, ok := suppliers[*product.SupplierID]; ok {
				view.SupplierID = &s.ID
				view.SupplierName = s.Name
			}
		}
		if product.CostPrice.Valid && !product.CostPrice.Decimal.IsZero() {
			view.CostPrice = product.CostPrice.Decimal.StringFixed(2)
		}
		views = append(views, view)
	}

	span.SetAttributes(
		attribute.Int("inventory.rows", len(rows)),
		attribute.Int("inventory.views", len(views)),
	)
	return views, nil
}

// fetchByIDs una sola consulta masiva indexada por ID; sin IDs no consulta.
func fetchByIDs[T any](
	ctx context.Context,
	ids []int64,
	list func(context.Context, []int64) ([]*T, error),
	key func(*T) int64,
) (map[int64]*T, error) {
	out := make(map[int64]*T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	items, err := list(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		out[key(it)] = it
	}
	return out, nil
}

// distinct conserva el orden de primera aparición.
func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
