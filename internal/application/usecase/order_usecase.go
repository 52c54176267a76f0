package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// OrderTxRunner transacción con los repos de órdenes y líneas.
type OrderTxRunner interface {
	RunOrders(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderItemRepository,
	) error) error
}

// OrderUseCase casos de uso CRUD para órdenes.
// Una orden con líneas no se puede borrar: primero hay que borrar sus líneas.
type OrderUseCase struct {
	repo     repository.OrderRepository
	txRunner OrderTxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, txRunner OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, txRunner: txRunner}
}

// Create crea una orden; Status por defecto "Pending", total por defecto 0.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	status := entity.OrderStatusPending
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}
	total := in.TotalAmount.OrZero()
	if total.IsNegative() {
		return nil, domain.Invalid("totalAmount", "totalAmount cannot be negative")
	}
	o := &entity.Order{
		SupplierID:   in.SupplierID.Ptr(),
		CustomerName: in.CustomerName,
		Status:       status,
		TotalAmount:  decimal.NewNullDecimal(total),
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return dto.OrderFromEntity(o), nil
}

// Get devuelve la orden o "Order not found".
func (uc *OrderUseCase) Get(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.NotFound("Order")
	}
	return o, nil
}

func (uc *OrderUseCase) List(ctx context.Context) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *dto.OrderFromEntity(o))
	}
	return &dto.OrderListResponse{Orders: items}, nil
}

func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.SupplierID.Valid {
		o.SupplierID = in.SupplierID.Ptr()
	}
	if in.CustomerName != nil {
		o.CustomerName = in.CustomerName
	}
	if in.Status != nil {
		o.Status = *in.Status
	}
	if in.TotalAmount.Valid {
		if in.TotalAmount.Amount.IsNegative() {
			return nil, domain.Invalid("totalAmount", "totalAmount cannot be negative")
		}
		o.TotalAmount = decimal.NewNullDecimal(in.TotalAmount.Amount)
	}
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, notFoundAs(err, "Order")
	}
	return dto.OrderFromEntity(o), nil
}

// Delete borra la orden con su fila bloqueada; si tiene líneas devuelve ErrConflict y no borra nada.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.RunOrders(ctx, func(orderRepo repository.OrderRepository, itemRepo repository.OrderItemRepository) error {
		o, err := orderRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.NotFound("Order")
		}
		n, err := itemRepo.CountByOrder(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("Order has %d order item(s); delete them first: %w", n, domain.ErrConflict)
		}
		return notFoundAs(orderRepo.Delete(ctx, id), "Order")
	})
}
