package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/domain"
	"github.com/jhoicas/inventory-orders-api/internal/domain/repository"
	"github.com/jhoicas/inventory-orders-api/pkg/format"
)

// OrderPDFGenerator genera el PDF de una orden a partir de datos ya formateados.
type OrderPDFGenerator interface {
	GenerateOrderPDF(doc *dto.OrderDocument) ([]byte, error)
}

// OrderDocumentUseCase arma el documento de una orden (cabecera, proveedor y líneas) y lo renderiza.
type OrderDocumentUseCase struct {
	orderRepo    repository.OrderRepository
	itemRepo     repository.OrderItemRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	generator    OrderPDFGenerator
}

// NewOrderDocumentUseCase construye el caso de uso inyectando todas sus dependencias.
func NewOrderDocumentUseCase(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	generator OrderPDFGenerator,
) *OrderDocumentUseCase {
	return &OrderDocumentUseCase{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		generator:    generator,
	}
}

// Build reúne los datos del documento. Productos borrados aparecen como "N/A".
func (uc *OrderDocumentUseCase) Build(ctx context.Context, orderID int64) (*dto.OrderDocument, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if order == nil {
		return nil, domain.NotFound("Order")
	}

	doc := &dto.OrderDocument{Order: *dto.OrderFromEntity(order)}
	if order.SupplierID != nil {
		s, err := uc.supplierRepo.GetByID(ctx, *order.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("pdf: obtener proveedor: %w", err)
		}
		if s != nil {
			doc.Supplier = s.Name
		}
	}

	items, err := uc.itemRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	productIDs := make([]int64, 0, len(items))
	for _, it := range items {
		productIDs = append(productIDs, it.ProductID)
	}
	names := make(map[int64][2]string, len(productIDs))
	if len(productIDs) > 0 {
		products, err := uc.productRepo.ListByIDs(ctx, productIDs)
		if err != nil {
			return nil, fmt.Errorf("pdf: obtener productos: %w", err)
		}
		for _, p := range products {
			names[p.ID] = [2]string{p.Name, p.SKU}
		}
	}

	total := decimal.Zero
	for _, it := range items {
		line := dto.OrderDocumentLine{
			ItemID:      format.ID(format.PrefixOrderItem, it.ID),
			ProductID:   format.ID(format.PrefixProduct, it.ProductID),
			ProductName: "N/A",
			Quantity:    it.Quantity,
			UnitPrice:   format.Peso(it.UnitPrice),
			Subtotal:    format.PesoNull(it.Subtotal),
		}
		if n, ok := names[it.ProductID]; ok {
			line.ProductName, line.SKU = n[0], n[1]
		}
		if it.Subtotal.Valid {
			total = total.Add(it.Subtotal.Decimal)
		}
		doc.Lines = append(doc.Lines, line)
	}
	doc.Total = format.Peso(total)
	return doc, nil
}

// Render genera el PDF y su nombre de archivo (orden_O001.pdf).
func (uc *OrderDocumentUseCase) Render(ctx context.Context, orderID int64) ([]byte, string, error) {
	doc, err := uc.Build(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateOrderPDF(doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	return pdf, fmt.Sprintf("orden_%s.pdf", doc.Order.ID), nil
}
