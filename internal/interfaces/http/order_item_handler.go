package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/application/inventory"
	"github.com/jhoicas/inventory-orders-api/internal/application/usecase"
)

// HeaderIdempotencyKey cabecera opcional para reintentos seguros del alta de líneas.
const HeaderIdempotencyKey = "Idempotency-Key"

// OrderItemHandler líneas de orden. El alta pasa por el libro de stock.
type OrderItemHandler struct {
	ledger *inventory.StockLedgerUseCase
	uc     *usecase.OrderItemUseCase
}

// NewOrderItemHandler construye el handler.
func NewOrderItemHandler(ledger *inventory.StockLedgerUseCase, uc *usecase.OrderItemUseCase) *OrderItemHandler {
	return &OrderItemHandler{ledger: ledger, uc: uc}
}

// List godoc
// @Summary      Listar líneas de orden
// @Tags         order-items
// @Produce      json
// @Success      200  {object}  dto.OrderItemListResponse
// @Router       /api/order-items [get]
func (h *OrderItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear línea de orden descontando stock
// @Description  Toma la primera fila de inventario del producto; falla sin cambios si no alcanza.
// @Tags         order-items
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Clave para reintentos"
// @Param        body  body  dto.CreateOrderItemRequest  true  "orderId, productId, quantity, unitPrice"
// @Success      201   {object}  dto.OrderItemEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/order-items/create [post]
func (h *OrderItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.ledger.CreateOrderItem(c.UserContext(), inventory.CreateOrderItemInput{
		OrderID:        in.OrderID.Value,
		ProductID:      in.ProductID.Value,
		Quantity:       in.Quantity.Value,
		UnitPrice:      in.UnitPrice.OrZero(),
		IdempotencyKey: strings.TrimSpace(c.Get(HeaderIdempotencyKey)),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OrderItemEnvelope{Success: true, OrderItem: dto.OrderItemFromEntity(item)})
}

// Update godoc
// @Summary      Actualizar línea de orden (no mueve stock)
// @Tags         order-items
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la línea"
// @Param        body  body  dto.UpdateOrderItemRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.OrderItemEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/order-items/{id}/update [put]
func (h *OrderItemHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OrderItemEnvelope{Success: true, OrderItem: out})
}

// Delete godoc
// @Summary      Eliminar línea de orden (no devuelve stock)
// @Tags         order-items
// @Produce      json
// @Param        id   path  int  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order-items/{id}/delete [delete]
func (h *OrderItemHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Order item deleted successfully"})
}
