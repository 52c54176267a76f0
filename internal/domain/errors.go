package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrConflict           = errors.New("conflict with current state")
	ErrInsufficientStock  = errors.New("insufficient inventory")
	ErrNoInventoryRecord  = errors.New("no inventory record")
	ErrCategoryNotFound   = errors.New("Product or Category not found")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDuplicateRequest   = errors.New("duplicate request")
)

// ValidationError campo faltante o con formato inválido. errors.Is(err, ErrInvalidInput) == true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is invalid", e.Field)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// Invalid atajo para construir un ValidationError.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// InsufficientStockError la fila elegida no cubre la cantidad pedida.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient inventory. Available: %d, Requested: %d", e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// NoInventoryRecordError el producto no tiene ninguna fila de inventario.
type NoInventoryRecordError struct {
	ProductID int64
}

func (e *NoInventoryRecordError) Error() string {
	return fmt.Sprintf("No inventory record found for product ID %d", e.ProductID)
}

func (e *NoInventoryRecordError) Is(target error) bool { return target == ErrNoInventoryRecord }

// NotFoundError recurso inexistente con nombre legible (p. ej. "Product not found").
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound atajo para construir un NotFoundError.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}
