package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y reasignación de categoría.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un nuevo producto. Montos ausentes quedan en 0; SKU repetido -> ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("name", "name is required")
	}
	if strings.TrimSpace(in.SKU) == "" {
		return nil, domain.Invalid("sku", "sku is required")
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID.Ptr(),
		SupplierID:  in.SupplierID.Ptr(),
		UnitPrice:   in.UnitPrice.OrZero(),
		SKU:         in.SKU,
		CostPrice:   decimal.NewNullDecimal(in.CostPrice.OrZero()),
	}
	if err := validatePrices(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.ProductFromEntity(product, uc.categoryName(ctx, product.CategoryID)), nil
}

// List lista productos con el nombre de su categoría (vacío si no resuelve).
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var categoryIDs []int64
	for _, p := range list {
		if p.CategoryID != nil {
			categoryIDs = append(categoryIDs, *p.CategoryID)
		}
	}
	names := make(map[int64]string)
	if len(categoryIDs) > 0 {
		categories, err := uc.categoryRepo.ListByIDs(ctx, categoryIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			names[c.ID] = c.Name
		}
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		name := ""
		if p.CategoryID != nil {
			name = names[*p.CategoryID]
		}
		items = append(items, *dto.ProductFromEntity(p, name))
	}
	return &dto.ProductListResponse{Products: items}, nil
}

// Update reemplaza solo los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Product")
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.Invalid("name", "name cannot be empty")
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = in.Description
	}
	if in.CategoryID.Valid {
		product.CategoryID = in.CategoryID.Ptr()
	}
	if in.SupplierID.Valid {
		product.SupplierID = in.SupplierID.Ptr()
	}
	product.UnitPrice = in.UnitPrice.Or(product.UnitPrice)
	if in.SKU != nil {
		if strings.TrimSpace(*in.SKU) == "" {
			return nil, domain.Invalid("sku", "sku cannot be empty")
		}
		product.SKU = *in.SKU
	}
	if in.CostPrice.Valid {
		product.CostPrice = decimal.NewNullDecimal(in.CostPrice.Amount)
	}
	if err := validatePrices(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, notFoundAs(err, "Product")
	}
	return dto.ProductFromEntity(product, uc.categoryName(ctx, product.CategoryID)), nil
}

// UpdateCategory reasigna la categoría solo si producto y categoría existen; si no, no modifica nada.
func (uc *ProductUseCase) UpdateCategory(ctx context.Context, productID, categoryID int64) error {
	product, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NotFound("Product")
	}
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}
	return notFoundAs(uc.repo.UpdateCategory(ctx, productID, categoryID), "Product")
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundAs(uc.repo.Delete(ctx, id), "Product")
}

func (uc *ProductUseCase) categoryName(ctx context.Context, id *int64) string {
	if id == nil {
		return ""
	}
	c, err := uc.categoryRepo.GetByID(ctx, *id)
	if err != nil || c == nil {
		return ""
	}
	return c.Name
}

func validatePrices(p *entity.Product) error {
	if p.UnitPrice.IsNegative() {
		return domain.Invalid("unitPrice", "unitPrice cannot be negative")
	}
	if p.CostPrice.Valid && p.CostPrice.Decimal.IsNegative() {
		return domain.Invalid("costPrice", "costPrice cannot be negative")
	}
	return nil
}
