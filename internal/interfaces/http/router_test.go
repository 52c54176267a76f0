package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-orders-api/internal/application/auth"
	"github.com/jhoicas/inventory-orders-api/internal/application/inventory"
	"github.com/jhoicas/inventory-orders-api/internal/application/usecase"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/export"
	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventory-orders-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-orders-api/internal/testutil/memstore"
	"github.com/jhoicas/inventory-orders-api/pkg/logger"
)

type testEnv struct {
	app   *fiber.App
	store *memstore.Store
}

func newTestEnv(t *testing.T, requireAuth bool) *testEnv {
	t.Helper()
	s := memstore.New()
	idem := memstore.NewIdempotencyStore()
	docUC := usecase.NewOrderDocumentUseCase(s.Orders(), s.OrderItems(), s.Products(), s.Suppliers(), pdf.NewMarotoPDFGenerator("Test"))

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler, StrictRouting: false})
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		DB:          s,
		AuthUC:      auth.NewAuthUseCase(s.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}),
		InventoryUC: inventory.NewUseCase(s.TxRunner(), s.Inventory(), s.Products(), s.Warehouses()),
		ViewUC:      inventory.NewViewUseCase(s.Inventory(), s.Products(), s.Warehouses(), s.Categories(), s.Suppliers()),
		LedgerUC:    inventory.NewStockLedgerUseCase(s.TxRunner(), idem, nil),
		CategoryUC:  usecase.NewCategoryUseCase(s.Categories()),
		SupplierUC:  usecase.NewSupplierUseCase(s.Suppliers()),
		WarehouseUC: usecase.NewWarehouseUseCase(s.Warehouses()),
		ProductUC:   usecase.NewProductUseCase(s.Products(), s.Categories()),
		OrderUC:     usecase.NewOrderUseCase(s.Orders(), s.TxRunner()),
		OrderDocUC:  docUC,
		OrderItemUC: usecase.NewOrderItemUseCase(s.OrderItems()),
		UserUC:      usecase.NewUserUseCase(s.Users(), bcrypt.MinCost),
		Exporter:    export.NewStockReportBuilder("test"),
		RequireAuth: requireAuth,
		JWTSecret:   testJWTSecret,
	})
	return &testEnv{app: app, store: s}
}

// seed carga el escenario base: producto 7 con 5 unidades en la bodega 2.
func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.store.Categories().Create(ctx, &entity.Category{ID: 1, Name: "Herramientas"}))
	require.NoError(t, e.store.Warehouses().Create(ctx, &entity.Warehouse{ID: 2, Name: "Central"}))
	require.NoError(t, e.store.Products().Create(ctx, &entity.Product{
		ID: 7, Name: "Taladro", SKU: "TAL-7", CategoryID: ptrInt(1), UnitPrice: decimal.NewFromInt(10),
	}))
	require.NoError(t, e.store.Inventory().Create(ctx, &entity.Inventory{ID: 1, ProductID: 7, WarehouseID: 2, Quantity: 5}))
	require.NoError(t, e.store.Orders().Create(ctx, &entity.Order{ID: 1, Status: entity.OrderStatusPending}))
}

func ptrInt(v int64) *int64 { return &v }

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, true)
	resp, body := env.do(t, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	h := decode[apphttp.HealthResponse](t, body)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "Backend is running", h.Message)
	assert.Equal(t, "connected", h.Database)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRequestID_SeRespetaElEntrante(t *testing.T) {
	env := newTestEnv(t, false)
	resp, _ := env.do(t, http.MethodGet, "/api/health", nil, apphttp.HeaderRequestID, "abc-123")
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestOrderItemCreate_DescuentaYRechaza(t *testing.T) {
	env := newTestEnv(t, false)
	env.seed(t)
	payload := map[string]any{"orderId": 1, "productId": "P007", "quantity": 3, "unitPrice": "₱10.00"}

	resp, body := env.do(t, http.MethodPost, "/api/order-items/create", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decode[map[string]any](t, body)
	assert.Equal(t, true, created["success"])
	item := created["orderItem"].(map[string]any)
	assert.Equal(t, "7", item["productId"])
	assert.Equal(t, "₱30.00", item["subtotal"])
	assert.Equal(t, 2, env.store.Inventory().Quantity(1))

	resp, body = env.do(t, http.MethodPost, "/api/order-items/create", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	rejected := decode[map[string]string](t, body)
	assert.Equal(t, "Insufficient inventory. Available: 2, Requested: 3", rejected["error"])
	assert.Equal(t, "INSUFFICIENT_STOCK", rejected["code"])
	assert.Equal(t, 2, env.store.Inventory().Quantity(1))
	assert.Equal(t, 1, env.store.OrderItems().Count())
}

func TestOrderItemCreate_SinInventario(t *testing.T) {
	env := newTestEnv(t, false)
	env.seed(t)

	resp, body := env.do(t, http.MethodPost, "/api/order-items/create",
		map[string]any{"orderId": 1, "productId": 99, "quantity": 1, "unitPrice": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[map[string]string](t, body)
	assert.Equal(t, "No inventory record found for product ID 99", out["error"])
	assert.Equal(t, "NO_INVENTORY_RECORD", out["code"])
}

func TestOrderItemCreate_IdempotencyKeyRepetida(t *testing.T) {
	env := newTestEnv(t, false)
	env.seed(t)
	payload := map[string]any{"orderId": 1, "productId": 7, "quantity": 1, "unitPrice": 10}

	resp, _ := env.do(t, http.MethodPost, "/api/order-items/create", payload, apphttp.HeaderIdempotencyKey, "k-1")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, body := env.do(t, http.MethodPost, "/api/order-items/create", payload, apphttp.HeaderIdempotencyKey, "k-1")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "DUPLICATE_REQUEST")
	assert.Equal(t, 4, env.store.Inventory().Quantity(1))
}

func TestOrderItemCreate_CuerpoInvalido(t *testing.T) {
	env := newTestEnv(t, false)
	req := httptest.NewRequest(http.MethodPost, "/api/order-items/create", strings.NewReader("{no-json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

func TestInventoryList_VistaAgregada(t *testing.T) {
	env := newTestEnv(t, false)
	env.seed(t)

	for _, path := range []string{"/api/inventory", "/api/inventory/", "/inventory"} {
		resp, body := env.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		out := decode[map[string][]map[string]any](t, body)
		require.Len(t, out["inventories"], 1, path)
		row := out["inventories"][0]
		assert.Equal(t, "Taladro", row["product_name"])
		assert.Equal(t, "Herramientas", row["category_name"])
		assert.Equal(t, "N/A", row["supplier_name"])
		assert.Nil(t, row["supplier_id"])
		assert.Equal(t, "Central", row["warehouse_name"])
		assert.Equal(t, "10.00", row["unit_price"])
		assert.Equal(t, "0", row["cost_price"])
	}
}

func TestInventoryMutaciones(t *testing.T) {
	env := newTestEnv(t, false)
	env.seed(t)

	resp, body := env.do(t, http.MethodPost, "/api/inventory/create",
		map[string]any{"productId": "P007", "warehouse_id": "W002", "quantity": "8"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	created := decode[map[string]any](t, body)
	assert.Equal(t, "success", created["status"])
	id := int64(created["inventory_id"].(float64))
	assert.Equal(t, 8, env.store.Inventory().Quantity(id))

	resp, body = env.do(t, http.MethodPost, "/api/inventory/create",
		map[string]any{"product_id": 99, "warehouse_id": 2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	failed := decode[map[string]any](t, body)
	assert.Equal(t, false, failed["success"])
	assert.Equal(t, "error", failed["status"])
	assert.Equal(t, "Product with ID 99 does not exist", failed["message"])

	resp, _ = env.do(t, http.MethodPut, "/api/inventory/1/update", map[string]any{"quantity": 11})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 11, env.store.Inventory().Quantity(1))

	resp, body = env.do(t, http.MethodPut, "/api/inventory/999/update", map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Inventory not found", decode[map[string]any](t, body)["message"])

	resp, body = env.do(t, http.MethodDelete, "/api/inventory/1/delete", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Inventory deleted successfully", decode[map[string]any](t, body)["message"])
}

func TestInventoryExportXML(t *testing.T) {
	env := newTestEnv(t, false)
	env.seed(t)

	resp, body := env.do(t, http.MethodGet, "/api/inventory/export.xml", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "xml")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "stock_report.xml")
	assert.Contains(t, string(body), `<Product id="P007"`)
}

func TestUpdateCategory_Rutas(t *testing.T) {
	env := newTestEnv(t, false)
	env.seed(t)
	require.NoError(t, env.store.Categories().Create(context.Background(), &entity.Category{ID: 2, Name: "Jardín"}))

	resp, body := env.do(t, http.MethodPost, "/api/products/7/update-category", map[string]any{"category_id": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "success", decode[map[string]string](t, body)["status"])

	resp, body = env.do(t, http.MethodPost, "/products/P007/update-category", map[string]any{"category_id": 999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := decode[map[string]string](t, body)
	assert.Equal(t, "error", out["status"])
	assert.Equal(t, "Product or Category not found", out["message"])

	p, err := env.store.Products().GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), *p.CategoryID)

	resp, _ = env.do(t, http.MethodPost, "/api/products/7/update-category", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrderDelete_ConLineas(t *testing.T) {
	env := newTestEnv(t, false)
	env.seed(t)
	resp, _ := env.do(t, http.MethodPost, "/api/order-items/create",
		map[string]any{"orderId": 1, "productId": 7, "quantity": 1, "unitPrice": 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := env.do(t, http.MethodDelete, "/api/orders/1/delete", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode[map[string]string](t, body)["code"])

	resp, _ = env.do(t, http.MethodGet, "/api/orders/O001", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOrderPDF(t *testing.T) {
	env := newTestEnv(t, false)
	env.seed(t)

	resp, body := env.do(t, http.MethodGet, "/api/orders/1/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "orden_O001.pdf")
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp, _ = env.do(t, http.MethodGet, "/api/orders/77/pdf", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategoryCRUD(t *testing.T) {
	env := newTestEnv(t, false)

	resp, body := env.do(t, http.MethodPost, "/api/categories/create", map[string]any{"name": "Pinturas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = env.do(t, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Pinturas")

	resp, body = env.do(t, http.MethodDelete, "/api/categories/C001/delete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Category deleted successfully", decode[map[string]any](t, body)["message"])

	resp, body = env.do(t, http.MethodDelete, "/api/categories/1/delete", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Category not found", decode[map[string]string](t, body)["error"])

	resp, _ = env.do(t, http.MethodDelete, "/api/categories/abc/delete", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuth_LoginYRutasProtegidas(t *testing.T) {
	env := newTestEnv(t, true)
	env.seed(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("clave"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, env.store.Users().Create(context.Background(),
		&entity.User{Username: "emp", Email: "emp@example.com", PasswordHash: string(hash), Role: entity.RoleEmployee}))

	resp, _ := env.do(t, http.MethodGet, "/api/inventory", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "emp", "password": "mala"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, decode[map[string]any](t, body)["success"])

	resp, body = env.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "emp", "password": "clave"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	token, _ := decode[map[string]any](t, body)["token"].(string)
	require.NotEmpty(t, token)

	resp, _ = env.do(t, http.MethodGet, "/api/inventory", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Gestión de usuarios solo para Admin.
	resp, _ = env.do(t, http.MethodGet, "/api/users", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
