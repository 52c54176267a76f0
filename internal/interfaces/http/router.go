package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-orders-api/internal/application/auth"
	"github.com/jhoicas/inventory-orders-api/internal/application/inventory"
	"github.com/jhoicas/inventory-orders-api/internal/application/usecase"
	"github.com/jhoicas/inventory-orders-api/internal/domain/entity"
	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DB          Pinger
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.UseCase
	ViewUC      *inventory.ViewUseCase
	LedgerUC    *inventory.StockLedgerUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	OrderUC     *usecase.OrderUseCase
	OrderDocUC  *usecase.OrderDocumentUseCase
	OrderItemUC *usecase.OrderItemUseCase
	UserUC      *usecase.UserUseCase
	Exporter    *export.StockReportBuilder

	// RequireAuth exige Bearer token en todo salvo health y login.
	RequireAuth bool
	JWTSecret   string
}

// Router registra las rutas de la API. La app debe crearse con StrictRouting=false
// para que la barra final sea opcional (/api/products y /api/products/).
func Router(app *fiber.App, deps RouterDeps) {
	var guard []fiber.Handler
	usersGuard := []fiber.Handler{}
	if deps.RequireAuth {
		guard = append(guard, AuthMiddleware(deps.JWTSecret))
		usersGuard = append(usersGuard, RequireRole(entity.RoleAdmin))
	}

	healthHandler := NewHealthHandler(deps.DB)
	authHandler := NewAuthHandler(deps.AuthUC)
	inventoryHandler := NewInventoryHandler(deps.ViewUC, deps.InventoryUC, deps.Exporter)
	orderItemHandler := NewOrderItemHandler(deps.LedgerUC, deps.OrderItemUC)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderDocUC)
	userHandler := NewUserHandler(deps.UserUC)

	api := app.Group("/api")

	// Públicas
	api.Get("/health", healthHandler.Check)
	api.Post("/auth/login", authHandler.Login)

	// Inventario
	inv := api.Group("/inventory", guard...)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/export.xml", inventoryHandler.Export)
	inv.Post("/create", inventoryHandler.Create)
	inv.Put("/:id/update", inventoryHandler.Update)
	inv.Delete("/:id/delete", inventoryHandler.Delete)

	// Líneas de orden (el alta descuenta stock)
	items := api.Group("/order-items", guard...)
	items.Get("/", orderItemHandler.List)
	items.Post("/create", orderItemHandler.Create)
	items.Put("/:id/update", orderItemHandler.Update)
	items.Delete("/:id/delete", orderItemHandler.Delete)

	products := api.Group("/products", guard...)
	products.Get("/", productHandler.List)
	products.Post("/create", productHandler.Create)
	products.Put("/:id/update", productHandler.Update)
	products.Delete("/:id/delete", productHandler.Delete)
	products.Post("/:id/update-category", productHandler.UpdateCategory)

	categories := api.Group("/categories", guard...)
	categories.Get("/", categoryHandler.List)
	categories.Post("/create", categoryHandler.Create)
	categories.Put("/:id/update", categoryHandler.Update)
	categories.Delete("/:id/delete", categoryHandler.Delete)

	suppliers := api.Group("/suppliers", guard...)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/create", supplierHandler.Create)
	suppliers.Put("/:id/update", supplierHandler.Update)
	suppliers.Delete("/:id/delete", supplierHandler.Delete)

	warehouses := api.Group("/warehouses", guard...)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/create", warehouseHandler.Create)
	warehouses.Put("/:id/update", warehouseHandler.Update)
	warehouses.Delete("/:id/delete", warehouseHandler.Delete)

	orders := api.Group("/orders", guard...)
	orders.Get("/", orderHandler.List)
	orders.Post("/create", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/pdf", orderHandler.PDF)
	orders.Put("/:id/update", orderHandler.Update)
	orders.Delete("/:id/delete", orderHandler.Delete)

	users := api.Group("/users", append(guard, usersGuard...)...)
	users.Get("/", userHandler.List)
	users.Post("/create", userHandler.Create)
	users.Put("/:id/update", userHandler.Update)
	users.Delete("/:id/delete", userHandler.Delete)

	// Rutas heredadas sin /api
	legacyInv := app.Group("/inventory", guard...)
	legacyInv.Get("/", inventoryHandler.List)
	legacyInv.Post("/create", inventoryHandler.Create)
	legacyInv.Put("/:id/update", inventoryHandler.Update)

	app.Group("/categories", guard...).Get("/", categoryHandler.List)
	app.Group("/products", guard...).Post("/:id/update-category", productHandler.UpdateCategory)
}
