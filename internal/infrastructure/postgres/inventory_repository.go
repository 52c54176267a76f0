package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `inventory_id, product_id, warehouse_id, quantity, last_updated`

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	if err := row.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.LastUpdated); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory (product_id, warehouse_id, quantity, last_updated)
		VALUES ($1, $2, $3, now())
		RETURNING inventory_id, last_updated`,
		inv.ProductID, inv.WarehouseID, inv.Quantity,
	).Scan(&inv.ID, &inv.LastUpdated)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID nil, nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.get(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE inventory_id = $1`, id)
}

func (r *InventoryRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.get(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE inventory_id = $1 FOR UPDATE`, id)
}

func (r *InventoryRepo) get(ctx context.Context, query string, id int64) (*entity.Inventory, error) {
	inv, err := scanInventory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// List todas las filas en orden de almacenamiento.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.Inventory, error) {
	rows, err := r.q.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory ORDER BY inventory_id`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	err := r.q.QueryRow(ctx, `
		UPDATE inventory SET product_id = $2, warehouse_id = $3, quantity = $4, last_updated = now()
		WHERE inventory_id = $1
		RETURNING last_updated`,
		inv.ID, inv.ProductID, inv.WarehouseID, inv.Quantity,
	).Scan(&inv.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE inventory_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FirstByProductForUpdate primera fila del producto (menor inventory_id) bloqueada hasta el fin de la tx.
func (r *InventoryRepo) FirstByProductForUpdate(ctx context.Context, productID int64) (*entity.Inventory, error) {
	inv, err := scanInventory(r.q.QueryRow(ctx, `
		SELECT `+inventoryColumns+`
		FROM inventory WHERE product_id = $1
		ORDER BY inventory_id
		LIMIT 1
		FOR UPDATE`, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return inv, nil
}

// DecrementIfAvailable descuento condicional: no toca la fila si quantity < n.
func (r *InventoryRepo) DecrementIfAvailable(ctx context.Context, inventoryID int64, n int) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE inventory SET quantity = quantity - $2, last_updated = now()
		WHERE inventory_id = $1 AND quantity >= $2`,
		inventoryID, n,
	)
	if err != nil {
		return false, fmt.Errorf("decrement inventory: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}
