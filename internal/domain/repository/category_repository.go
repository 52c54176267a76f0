package repository

import (
	"context"

	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	// ListByIDs búsqueda masiva; los ids inexistentes simplemente no aparecen.
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
