package repository

import (
	"context"

	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
)

// OrderItemRepository define el puerto de persistencia para OrderItem (DIP).
type OrderItemRepository interface {
	Create(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, id int64) (*entity.OrderItem, error)
	List(ctx context.Context) ([]*entity.OrderItem, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
	CountByOrder(ctx context.Context, orderID int64) (int, error)
	Update(ctx context.Context, item *entity.OrderItem) error
	Delete(ctx context.Context, id int64) error
}
