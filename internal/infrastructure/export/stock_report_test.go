package export_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-orders-api/internal/application/dto"
	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/export"
)

func TestStockReportBuilder_Build(t *testing.T) {
	catID := int64(3)
	views := []dto.InventoryView{
		{
			InventoryID: 1, ProductID: 7, ProductName: "Widget", SKU: "W-7",
			CategoryID: &catID, CategoryName: "Tools",
			SupplierName: "N/A",
			WarehouseID:  2, WarehouseName: "Main",
			Quantity: 5, UnitPrice: "10.00", CostPrice: "0",
		},
		{
			InventoryID: 4, ProductID: 8, ProductName: "Gadget", SKU: "G-8",
			CategoryName: "N/A", SupplierName: "N/A",
			WarehouseID: 2, WarehouseName: "Main",
			Quantity: 3, UnitPrice: "2.50", CostPrice: "1.25",
		},
	}
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	out, err := export.NewStockReportBuilder("inventory-orders-api").Build(views, at)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "StockReport", root.Tag)
	assert.Equal(t, "2", root.SelectAttrValue("count", ""))
	assert.Equal(t, "2026-10-17T09:00:00Z", root.SelectAttrValue("generatedAt", ""))

	items := root.SelectElements("Item")
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].SelectAttrValue("inventoryId", ""))
	assert.Equal(t, "P007", items[0].SelectElement("Product").SelectAttrValue("id", ""))
	assert.Equal(t, "Widget", items[0].SelectElement("Product").Text())
	assert.Equal(t, "C003", items[0].SelectElement("Category").SelectAttrValue("id", ""))
	assert.Nil(t, items[0].SelectElement("Supplier").SelectAttr("id"))
	assert.Equal(t, "N/A", items[0].SelectElement("Supplier").Text())
	assert.Equal(t, "W002", items[1].SelectElement("Warehouse").SelectAttrValue("id", ""))
	assert.Equal(t, "8", root.SelectElement("TotalQuantity").Text())
}

func TestStockReportBuilder_Vacio(t *testing.T) {
	out, err := export.NewStockReportBuilder("").Build(nil, time.Now())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Equal(t, "0", doc.Root().SelectAttrValue("count", ""))
	assert.Empty(t, doc.Root().SelectElements("Item"))
	assert.Nil(t, doc.Root().SelectAttr("source"))
}
