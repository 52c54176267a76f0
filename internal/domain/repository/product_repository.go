package repository

import (
	"context"

	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateCategory reasigna solo category_id.
	UpdateCategory(ctx context.Context, productID, categoryID int64) error
	Delete(ctx context.Context, id int64) error
}
