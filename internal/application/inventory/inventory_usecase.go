package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// UseCase alta, cambio y baja de filas de inventario.
// Las cantidades nunca quedan negativas y cada fila apunta a producto y bodega existentes al escribirse.
type UseCase struct {
	txRunner      TxRunner
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create registra existencias de un producto en una bodega y devuelve el ID nuevo.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (int64, error) {
	productID, warehouseID := in.Product(), in.Warehouse()
	if !productID.Valid {
		return 0, domain.Invalid("product_id", "product_id is required")
	}
	if !warehouseID.Valid {
		return 0, domain.Invalid("warehouse_id", "warehouse_id is required")
	}
	qty := 0
	if in.Quantity.Valid {
		qty = in.Quantity.Value
	}
	if qty < 0 {
		return 0, domain.Invalid("quantity", "quantity cannot be negative")
	}

	product, err := uc.productRepo.GetByID(ctx, productID.Value)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.Invalid("product_id", fmt.Sprintf("Product with ID %d does not exist", productID.Value))
	}
	if err := uc.requireWarehouse(ctx, warehouseID.Value); err != nil {
		return 0, err
	}

	inv := &entity.Inventory{ProductID: productID.Value, WarehouseID: warehouseID.Value, Quantity: qty}
	if err := uc.inventoryRepo.Create(ctx, inv); err != nil {
		return 0, err
	}
	return inv.ID, nil
}

// Update cambia cantidad y/o bodega. Corre con la fila bloqueada para no pisar un descuento concurrente.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.UpdateInventoryRequest) error {
	if in.Quantity.Valid && in.Quantity.Value < 0 {
		return domain.Invalid("quantity", "quantity cannot be negative")
	}
	warehouseID := in.Warehouse()
	if warehouseID.Valid {
		if err := uc.requireWarehouse(ctx, warehouseID.Value); err != nil {
			return err
		}
	}

	return uc.txRunner.RunStock(ctx, func(invRepo repository.InventoryRepository, _ repository.OrderItemRepository) error {
		inv, err := invRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.NotFound("Inventory")
		}
		if in.Quantity.Valid {
			inv.Quantity = in.Quantity.Value
		}
		if warehouseID.Valid {
			inv.WarehouseID = warehouseID.Value
		}
		return invRepo.Update(ctx, inv)
	})
}

// Delete elimina la fila de inventario.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.inventoryRepo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "Inventory")
	}
	return nil
}

func (uc *UseCase) requireWarehouse(ctx context.Context, id int64) error {
	wh, err := uc.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.Invalid("warehouse_id", fmt.Sprintf("Warehouse with ID %d does not exist", id))
	}
	return nil
}

func notFoundAs(err error, resource string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(resource)
	}
	return err
}
