package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("name", "name is required")
	}
	s := &entity.Supplier{Name: in.Name, Email: in.Email, Phone: in.Phone, Address: in.Address}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return dto.SupplierFromEntity(s), nil
}

func (uc *SupplierUseCase) List(ctx context.Context) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.SupplierFromEntity(s))
	}
	return &dto.SupplierListResponse{Suppliers: items}, nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("Supplier")
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.Invalid("name", "name cannot be empty")
		}
		s.Name = *in.Name
	}
	if in.Email != nil {
		s.Email = in.Email
	}
	if in.Phone != nil {
		s.Phone = in.Phone
	}
	if in.Address != nil {
		s.Address = in.Address
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, notFoundAs(err, "Supplier")
	}
	return dto.SupplierFromEntity(s), nil
}

func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundAs(uc.repo.Delete(ctx, id), "Supplier")
}
