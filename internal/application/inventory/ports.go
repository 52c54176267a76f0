package inventory

import (
	"context"

	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el descuento de stock y el alta de la línea de orden se confirmen o descarten juntos.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		itemRepo repository.OrderItemRepository,
	) error) error
}

// IdempotencyStore reserva claves Idempotency-Key por un tiempo limitado.
// Reserve devuelve false si la clave ya estaba tomada.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
