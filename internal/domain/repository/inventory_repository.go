package repository

import (
	"context"

	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
)

// InventoryRepository define el puerto para las filas de inventario (producto x bodega).
// Usado también dentro de transacciones por el libro de stock.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id int64) (*entity.Inventory, error)
	// GetForUpdate como GetByID pero con la fila bloqueada hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error)
	// List devuelve todas las filas en orden de almacenamiento (inventory_id).
	List(ctx context.Context) ([]*entity.Inventory, error)
	Update(ctx context.Context, inv *entity.Inventory) error
	Delete(ctx context.Context, id int64) error
	// FirstByProductForUpdate primera fila del producto por orden de almacenamiento,
	// bloqueada hasta el fin de la transacción (SELECT ... FOR UPDATE). nil si no hay.
	FirstByProductForUpdate(ctx context.Context, productID int64) (*entity.Inventory, error)
	// DecrementIfAvailable resta n solo si quantity >= n. false si no se afectó ninguna fila.
	DecrementIfAvailable(ctx context.Context, inventoryID int64, n int) (bool, error)
}
