package usecase_test

import (
	"context"
	"errors"
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

type fakeGenerator struct {
	got *dto.OrderDocument
	err error
}

func (f *fakeGenerator) GenerateOrderPDF(doc *dto.OrderDocument) ([]byte, error) {
	f.got = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func seedOrderWithLines(t *testing.T, s *memstore.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Suppliers().Create(ctx, &entity.Supplier{ID: 4, Name: "Acme"}))
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ID: 7, Name: "Taladro", SKU: "TAL-7", UnitPrice: decimal.NewFromInt(10)}))
	require.NoError(t, s.Orders().Create(ctx, &entity.Order{ID: 1, SupplierID: ptr(int64(4)), Status: "Pending"}))
	for _, it := range []*entity.OrderItem{
		{OrderID: 1, ProductID: 7, Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
		{OrderID: 1, ProductID: 55, Quantity: 1, UnitPrice: decimal.RequireFromString("0.5")},
		{OrderID: 2, ProductID: 7, Quantity: 9, UnitPrice: decimal.NewFromInt(10)},
	} {
		it.ComputeSubtotal()
		require.NoError(t, s.OrderItems().Create(ctx, it))
	}
}

func TestOrderDocumentBuild(t *testing.T) {
	s := memstore.New()
	seedOrderWithLines(t, s)
	uc := usecase.NewOrderDocumentUseCase(s.Orders(), s.OrderItems(), s.Products(), s.Suppliers(), &fakeGenerator{})

	doc, err := uc.Build(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "O001", doc.Order.ID)
	assert.Equal(t, "Acme", doc.Supplier)
	require.Len(t, doc.Lines, 2)

	assert.Equal(t, "OI001", doc.Lines[0].ItemID)
	assert.Equal(t, "P007", doc.Lines[0].ProductID)
	assert.Equal(t, "Taladro", doc.Lines[0].ProductName)
	assert.Equal(t, "TAL-7", doc.Lines[0].SKU)
	assert.Equal(t, "₱20.00", doc.Lines[0].Subtotal)

	assert.Equal(t, "N/A", doc.Lines[1].ProductName)
	assert.Empty(t, doc.Lines[1].SKU)

	assert.Equal(t, "₱20.50", doc.Total)
}

func TestOrderDocumentRender(t *testing.T) {
	s := memstore.New()
	seedOrderWithLines(t, s)
	gen := &fakeGenerator{}
	uc := usecase.NewOrderDocumentUseCase(s.Orders(), s.OrderItems(), s.Products(), s.Suppliers(), gen)

	pdf, name, err := uc.Render(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "orden_O001.pdf", name)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	require.NotNil(t, gen.got)
	assert.Len(t, gen.got.Lines, 2)

	_, _, err = uc.Render(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Order not found", err.Error())

	gen.err = errors.New("fuente no disponible")
	_, _, err = uc.Render(context.Background(), 1)
	assert.ErrorIs(t, err, gen.err)
}
