package usecase

import (
	"context"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// OrderItemUseCase listado, cambio y baja de líneas de orden.
// El alta pasa por el libro de stock; cambios y bajas no mueven inventario.
type OrderItemUseCase struct {
	repo repository.OrderItemRepository
}

// NewOrderItemUseCase construye el caso de uso.
func NewOrderItemUseCase(repo repository.OrderItemRepository) *OrderItemUseCase {
	return &OrderItemUseCase{repo: repo}
}

func (uc *OrderItemUseCase) List(ctx context.Context) (*dto.OrderItemListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *dto.OrderItemFromEntity(it))
	}
	return &dto.OrderItemListResponse{OrderItems: items}, nil
}

// Update reemplaza los campos presentes y recalcula el subtotal.
func (uc *OrderItemUseCase) Update(ctx context.Context, id int64, in dto.UpdateOrderItemRequest) (*dto.OrderItemResponse, error) {
	it, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.NotFound("Order item")
	}
	if in.OrderID.Valid {
		it.OrderID = in.OrderID.Value
	}
	if in.ProductID.Valid {
		it.ProductID = in.ProductID.Value
	}
	if in.Quantity.Valid {
		if in.Quantity.Value <= 0 {
			return nil, domain.Invalid("quantity", "quantity must be greater than 0")
		}
		it.Quantity = in.Quantity.Value
	}
	if in.UnitPrice.Valid {
		if in.UnitPrice.Amount.IsNegative() {
			return nil, domain.Invalid("unitPrice", "unitPrice cannot be negative")
		}
		it.UnitPrice = in.UnitPrice.Amount
	}
	it.ComputeSubtotal()
	if err := uc.repo.Update(ctx, it); err != nil {
		return nil, notFoundAs(err, "Order item")
	}
	return dto.OrderItemFromEntity(it), nil
}

func (uc *OrderItemUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundAs(uc.repo.Delete(ctx, id), "Order item")
}
