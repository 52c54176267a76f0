package usecase

import (
	"errors"

	"github.com/jhoicas/inventory-orders-api/internal/domain"
)

// notFoundAs traduce el ErrNotFound genérico del repo a "<Recurso> not found".
func notFoundAs(err error, resource string) error {
	if errors.Is(err, domain.ErrNotFound) {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return err
		}
		return domain.NotFound(resource)
	}
	return err
}
