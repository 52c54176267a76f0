package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/application/inventory"
	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/export"
)

// InventoryHandler vista agregada, alta/cambio/baja de inventario y exportación XML.
type InventoryHandler struct {
	viewUC   *inventory.ViewUseCase
	uc       *inventory.UseCase
	exporter *export.StockReportBuilder
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(viewUC *inventory.ViewUseCase, uc *inventory.UseCase, exporter *export.StockReportBuilder) *InventoryHandler {
	return &InventoryHandler{viewUC: viewUC, uc: uc, exporter: exporter}
}

// List godoc
// @Summary      Vista agregada de inventario
// @Description  Una fila por inventario con producto, categoría, proveedor y bodega. Filas huérfanas se omiten.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	views, err := h.viewUC.ListInventoryViews(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.InventoryListResponse{Inventories: views})
}

// Export godoc
// @Summary      Reporte XML de existencias
// @Tags         inventory
// @Produce      xml
// @Success      200
// @Router       /api/inventory/export.xml [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	views, err := h.viewUC.ListInventoryViews(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.exporter.Build(views, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_report.xml"`)
	return c.Send(out)
}

// Create godoc
// @Summary      Crear fila de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "product_id|productId, warehouse_id|warehouseId, quantity"
// @Success      200   {object}  dto.InventoryMutationResponse
// @Failure      400   {object}  dto.StatusErrorResponse
// @Router       /api/inventory/create [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondStatusError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid data format: "+err.Error()))
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondStatusError(c, err)
	}
	return c.JSON(dto.InventoryMutationResponse{Success: true, Status: "success", InventoryID: id})
}

// Update godoc
// @Summary      Actualizar cantidad y/o bodega
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de inventario"
// @Param        body  body  dto.UpdateInventoryRequest  true  "quantity, warehouse_id|warehouseId"
// @Success      200   {object}  dto.InventoryMutationResponse
// @Failure      400   {object}  dto.StatusErrorResponse
// @Failure      404   {object}  dto.StatusErrorResponse
// @Router       /api/inventory/{id}/update [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondStatusError(c, err)
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondStatusError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid data format: "+err.Error()))
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondStatusError(c, err)
	}
	return c.JSON(dto.InventoryMutationResponse{Success: true, Status: "success"})
}

// Delete godoc
// @Summary      Eliminar fila de inventario
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID de inventario"
// @Success      200  {object}  dto.InventoryMutationResponse
// @Failure      404  {object}  dto.StatusErrorResponse
// @Router       /api/inventory/{id}/delete [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return respondStatusError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondStatusError(c, err)
	}
	return c.JSON(dto.InventoryMutationResponse{Success: true, Status: "success", Message: "Inventory deleted successfully"})
}
