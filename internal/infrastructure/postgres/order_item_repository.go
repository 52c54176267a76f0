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

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// OrderItemRepo implementación de OrderItemRepository sobre PostgreSQL (usable con pool o tx).
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

const orderItemColumns = `order_item_id, order_id, product_id, quantity, unit_price, subtotal`

func scanOrderItem(row pgx.Row) (*entity.OrderItem, error) {
	var it entity.OrderItem
	if err := row.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderItemRepo) Create(ctx context.Context, it *entity.OrderItem) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_item_id`,
		it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal,
	).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

func (r *OrderItemRepo) GetByID(ctx context.Context, id int64) (*entity.OrderItem, error) {
	it, err := scanOrderItem(r.q.QueryRow(ctx,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_item_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return it, nil
}

func (r *OrderItemRepo) List(ctx context.Context) ([]*entity.OrderItem, error) {
	return r.list(ctx, `SELECT `+orderItemColumns+` FROM order_items ORDER BY order_item_id`)
}

func (r *OrderItemRepo) ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	return r.list(ctx, `SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY order_item_id`, orderID)
}

func (r *OrderItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.OrderItem, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		it, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *OrderItemRepo) CountByOrder(ctx context.Context, orderID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM order_items WHERE order_id = $1`, orderID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count order items: %w", err)
	}
	return n, nil
}

func (r *OrderItemRepo) Update(ctx context.Context, it *entity.OrderItem) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE order_items SET order_id = $2, product_id = $3, quantity = $4, unit_price = $5, subtotal = $6
		WHERE order_item_id = $1`,
		it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_item_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
