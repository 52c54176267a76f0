// Package export serializa la vista agregada de inventario a XML para integraciones externas.
package export

import (
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/pkg/format"
)

// StockReportBuilder construye el reporte <StockReport> a partir de filas de la vista de inventario.
type StockReportBuilder struct {
	source string
}

// NewStockReportBuilder crea el builder; source se publica como atributo del nodo raíz.
func NewStockReportBuilder(source string) *StockReportBuilder {
	return &StockReportBuilder{source: source}
}

// Build genera el XML. Cada fila es un <Item>; categoría y proveedor sin ID llevan solo el nombre ("N/A").
func (b *StockReportBuilder) Build(views []dto.InventoryView, generatedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockReport")
	if b.source != "" {
		root.CreateAttr("source", b.source)
	}
	root.CreateAttr("generatedAt", generatedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("count", strconv.Itoa(len(views)))

	total := 0
	for _, v := range views {
		item := root.CreateElement("Item")
		item.CreateAttr("inventoryId", strconv.FormatInt(v.InventoryID, 10))

		product := item.CreateElement("Product")
		product.CreateAttr("id", format.ID(format.PrefixProduct, v.ProductID))
		product.CreateAttr("sku", v.SKU)
		product.CreateText(v.ProductName)

		refElement(item, "Category", format.PrefixCategory, v.CategoryID, v.CategoryName)
		refElement(item, "Supplier", format.PrefixSupplier, v.SupplierID, v.SupplierName)

		wh := item.CreateElement("Warehouse")
		wh.CreateAttr("id", format.ID(format.PrefixWarehouse, v.WarehouseID))
		wh.CreateText(v.WarehouseName)

		item.CreateElement("Quantity").CreateText(strconv.Itoa(v.Quantity))
		item.CreateElement("UnitPrice").CreateText(v.UnitPrice)
		item.CreateElement("CostPrice").CreateText(v.CostPrice)
		total += v.Quantity
	}
	root.CreateElement("TotalQuantity").CreateText(strconv.Itoa(total))

	doc.Indent(2)
	return doc.WriteToBytes()
}

func refElement(parent *etree.Element, tag, prefix string, id *int64, name string) {
	el := parent.CreateElement(tag)
	if id != nil {
		el.CreateAttr("id", format.ID(prefix, *id))
	}
	el.CreateText(name)
}
