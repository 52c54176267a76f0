package inventory

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
	"github.com/jhoicas/inventory-orders-api/pkg/logger"
)

// StockLedgerUseCase registra líneas de orden descontando stock de forma atómica.
// La fila de inventario se bloquea (SELECT FOR UPDATE) y el descuento es condicional (quantity >= n),
// así dos pedidos concurrentes nunca dejan la cantidad en negativo.
type StockLedgerUseCase struct {
	txRunner TxRunner
	idem     IdempotencyStore
	log      *logger.Logger
}

// NewStockLedgerUseCase construye el caso de uso. idem puede ser nil (sin Idempotency-Key).
func NewStockLedgerUseCase(txRunner TxRunner, idem IdempotencyStore, log *logger.Logger) *StockLedgerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockLedgerUseCase{txRunner: txRunner, idem: idem, log: log}
}

// CreateOrderItemInput entrada del alta de línea. OrderID no se valida contra orders.
type CreateOrderItemInput struct {
	OrderID        int64
	ProductID      int64
	Quantity       int
	UnitPrice      decimal.Decimal
	IdempotencyKey string
}

func (in CreateOrderItemInput) validate() error {
	switch {
	case in.OrderID <= 0:
		return domain.Invalid("orderId", "orderId is required")
	case in.ProductID <= 0:
		return domain.Invalid("productId", "productId is required")
	case in.Quantity <= 0:
		return domain.Invalid("quantity", "quantity must be greater than 0")
	case in.UnitPrice.IsNegative():
		return domain.Invalid("unitPrice", "unitPrice cannot be negative")
	}
	return nil
}

// CreateOrderItem toma la primera fila de inventario del producto, verifica que alcance,
// descuenta y da de alta la línea en la misma transacción. Cualquier error deja todo sin cambios.
func (uc *StockLedgerUseCase) CreateOrderItem(ctx context.Context, in CreateOrderItemInput) (*entity.OrderItem, error) {
	ctx, span := tracer.Start(ctx, "inventory.CreateOrderItem")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("order.id", in.OrderID),
		attribute.Int64("product.id", in.ProductID),
		attribute.Int("quantity", in.Quantity),
	)

	if err := in.validate(); err != nil {
		return nil, err
	}

	reserved := false
	if in.IdempotencyKey != "" && uc.idem != nil {
		ok, err := uc.idem.Reserve(ctx, in.IdempotencyKey)
		if err != nil {
			uc.log.Error().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("no se pudo reservar la clave de idempotencia")
			return nil, err
		}
		if !ok {
			return nil, domain.ErrDuplicateRequest
		}
		reserved = true
	}

	item := &entity.OrderItem{
		OrderID:   in.OrderID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	}
	item.ComputeSubtotal()

	err := uc.txRunner.RunStock(ctx, func(invRepo repository.InventoryRepository, itemRepo repository.OrderItemRepository) error {
		inv, err := invRepo.FirstByProductForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if inv == nil {
			return &domain.NoInventoryRecordError{ProductID: in.ProductID}
		}
		if !inv.Covers(in.Quantity) {
			return &domain.InsufficientStockError{Available: inv.Quantity, Requested: in.Quantity}
		}
		ok, err := invRepo.DecrementIfAvailable(ctx, inv.ID, in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return &domain.InsufficientStockError{Available: inv.Quantity, Requested: in.Quantity}
		}
		return itemRepo.Create(ctx, item)
	})
	if err != nil {
		if reserved {
			// Se libera aunque la petición se haya cancelado; si no, la clave queda tomada hasta su TTL.
			if relErr := uc.idem.Release(context.WithoutCancel(ctx), in.IdempotencyKey); relErr != nil {
				uc.log.Warn().Err(relErr).Str("idempotency_key", in.IdempotencyKey).Msg("no se pudo liberar la clave de idempotencia")
			}
		}
		if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrNoInventoryRecord) {
			uc.log.Debug().Err(err).Int64("product_id", in.ProductID).Msg("línea de orden rechazada")
		} else {
			uc.log.Error().Err(err).Int64("product_id", in.ProductID).Msg("error registrando línea de orden")
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}

	uc.log.Info().
		Int64("order_item_id", item.ID).
		Int64("product_id", item.ProductID).
		Int("quantity", item.Quantity).
		Msg("línea de orden registrada")
	return item, nil
}
