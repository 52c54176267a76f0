package pdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/pdf"
)

func TestGenerateOrderPDF(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator("")
	doc := &dto.OrderDocument{
		Order: dto.OrderResponse{
			ID:           "O001",
			OrderID:      1,
			OrderDate:    "2026-10-17 09:30:00 AM",
			CustomerName: "Juan Dela Cruz",
			Status:       "Pending",
			TotalAmount:  "₱1,500.00",
		},
		Supplier: "Acme Supplies",
		Lines: []dto.OrderDocumentLine{
			{ItemID: "OI001", ProductID: "P001", ProductName: "Widget", SKU: "W-1", Quantity: 3, UnitPrice: "₱500.00", Subtotal: "₱1,500.00"},
		},
		Total: "₱1,500.00",
	}

	out, err := gen.GenerateOrderPDF(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateOrderPDF_SinLineas(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator("Bodega Central")
	out, err := gen.GenerateOrderPDF(&dto.OrderDocument{
		Order: dto.OrderResponse{ID: "O002", OrderID: 2},
		Total: "₱0.00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateOrderPDF_Nil(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator("").GenerateOrderPDF(nil)
	assert.Error(t, err)
}
