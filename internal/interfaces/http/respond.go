package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/pkg/format"
)

// errorStatus traduce un error de dominio a status HTTP y código.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		return fiber.StatusNotFound, "CATEGORY_NOT_FOUND"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusBadRequest, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrNoInventoryRecord):
		return fiber.StatusBadRequest, "NO_INVENTORY_RECORD"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest, "CONFLICT"
	case errors.Is(err, domain.ErrDuplicateRequest):
		return fiber.StatusConflict, "DUPLICATE_REQUEST"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, "HTTP_ERROR"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// respondError escribe {"error": ..., "code": ...} con el status que corresponda.
func respondError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	logFailure(c, status, err)
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error(), Code: code})
}

// respondStatusError variante de las rutas de inventario: {"success":false,"status":"error","message":...}.
func respondStatusError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	logFailure(c, status, err)
	success := false
	return c.Status(status).JSON(dto.StatusErrorResponse{
		Success: &success,
		Status:  "error",
		Message: err.Error(),
		Code:    code,
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body", Code: "INVALID_BODY"})
}

func logFailure(c *fiber.Ctx, status int, err error) {
	if status < fiber.StatusInternalServerError {
		return
	}
	zerolog.Ctx(c.UserContext()).Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno atendiendo la petición")
}

// pathID lee :id aceptando "7" o "P007".
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := format.ParseID(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, domain.Invalid("id", "Invalid id")
	}
	return id, nil
}

// ErrorHandler manejador global de Fiber: mismo formato que respondError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}
