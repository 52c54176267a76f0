package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/application/usecase"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/testutil/memstore"
)

func ptr[T any](v T) *T { return &v }

func newProductUseCase(t *testing.T) (*usecase.ProductUseCase, *memstore.Store) {
	t.Helper()
	s := memstore.New()
	ctx := context.Background()
	require.NoError(t, s.Categories().Create(ctx, &entity.Category{ID: 1, Name: "Herramientas"}))
	require.NoError(t, s.Categories().Create(ctx, &entity.Category{ID: 2, Name: "Jardín"}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{
		ID: 7, Name: "Taladro", SKU: "TAL-7", CategoryID: ptr(int64(1)), UnitPrice: decimal.NewFromInt(10),
	}))
	return usecase.NewProductUseCase(s.Products(), s.Categories()), s
}

func TestUpdateCategory_Reasigna(t *testing.T) {
	ctx := context.Background()
	uc, s := newProductUseCase(t)

	require.NoError(t, uc.UpdateCategory(ctx, 7, 2))
	p, err := s.Products().GetByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, p.CategoryID)
	assert.Equal(t, int64(2), *p.CategoryID)
}

// Categoría inexistente: error y el producto queda igual.
func TestUpdateCategory_CategoriaInexistente(t *testing.T) {
	ctx := context.Background()
	uc, s := newProductUseCase(t)

	err := uc.UpdateCategory(ctx, 7, 999)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Equal(t, "Product or Category not found", err.Error())

	p, err := s.Products().GetByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, p.CategoryID)
	assert.Equal(t, int64(1), *p.CategoryID)
}

func TestUpdateCategory_ProductoInexistente(t *testing.T) {
	uc, _ := newProductUseCase(t)

	err := uc.UpdateCategory(context.Background(), 99, 2)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found", err.Error())
}

func TestProductCreate(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProductUseCase(t)

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		Name:       "Sierra",
		SKU:        "SIE-1",
		CategoryID: dto.NewFlexID(2),
		UnitPrice:  dto.NewMoney(decimal.RequireFromString("1234.5")),
	})
	require.NoError(t, err)
	assert.Equal(t, "P008", out.ID)
	assert.Equal(t, "Jardín", out.CategoryName)
	assert.Equal(t, "₱1,234.50", out.UnitPrice)
	assert.Equal(t, "₱0.00", out.CostPrice)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Otro", SKU: "SIE-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "", SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Y", SKU: "Y", UnitPrice: dto.NewMoney(decimal.NewFromInt(-1))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_Parcial(t *testing.T) {
	ctx := context.Background()
	uc, s := newProductUseCase(t)

	out, err := uc.Update(ctx, 7, dto.UpdateProductRequest{Name: ptr("Taladro Pro")})
	require.NoError(t, err)
	assert.Equal(t, "Taladro Pro", out.Name)
	assert.Equal(t, "TAL-7", out.SKU)
	assert.Equal(t, "Herramientas", out.CategoryName)

	p, err := s.Products().GetByID(ctx, 7)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(p.UnitPrice))

	_, err = uc.Update(ctx, 99, dto.UpdateProductRequest{Name: ptr("x")})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found", err.Error())
}

func TestProductListYDelete(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProductUseCase(t)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "Herramientas", list.Products[0].CategoryName)

	require.NoError(t, uc.Delete(ctx, 7))
	err = uc.Delete(ctx, 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found", err.Error())

	list, err = uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Products)
}
