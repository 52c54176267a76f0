package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("name", "name is required")
	}
	c := &entity.Category{Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return dto.CategoryFromEntity(c), nil
}

func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.CategoryFromEntity(c))
	}
	return &dto.CategoryListResponse{Categories: items}, nil
}

// Update reemplaza solo los campos presentes.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("Category")
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.Invalid("name", "name cannot be empty")
		}
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, notFoundAs(err, "Category")
	}
	return dto.CategoryFromEntity(c), nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundAs(uc.repo.Delete(ctx, id), "Category")
}
