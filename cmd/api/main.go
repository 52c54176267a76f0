package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-orders-api/internal/application/auth"
	"github.com/jhoicas/inventory-orders-api/internal/application/inventory"
	"github.com/jhoicas/inventory-orders-api/internal/application/usecase"
	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/export"
	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/observability"
	infrapdf "github.com/jhoicas/inventory-orders-api/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/inventory-orders-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/inventory-orders-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-orders-api/pkg/config"
	"github.com/jhoicas/inventory-orders-api/pkg/logger"
)

func main() {
	// .env opcional; las variables ya definidas en el entorno no se pisan.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Otel, cfg.App.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas OTLP")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	orderItemRepo := postgres.NewOrderItemRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Idempotency-Key solo si hay Redis configurado.
	var idem inventory.IdempotencyStore
	if cfg.Redis.Enabled() {
		redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		idem = infraredis.NewIdempotencyStore(redisClient, cfg.Redis.IdempotencyTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotencia de líneas de orden activada")
	}

	viewUC := inventory.NewViewUseCase(inventoryRepo, productRepo, warehouseRepo, categoryRepo, supplierRepo)
	inventoryUC := inventory.NewUseCase(txRunner, inventoryRepo, productRepo, warehouseRepo)
	ledgerUC := inventory.NewStockLedgerUseCase(txRunner, idem, log.Component("stock_ledger"))

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	orderDocUC := usecase.NewOrderDocumentUseCase(orderRepo, orderItemRepo, productRepo, supplierRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:       cfg.App.Name,
		StrictRouting: false,
		ReadTimeout:   time.Second * 10,
		WriteTimeout:  time.Second * 10,
		IdleTimeout:   time.Second * 60,
		ErrorHandler:  httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.Tracing())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.DocsPath != "" {
		if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.DocsPath,
				Path:     "docs",
				Title:    "Inventory & Orders API",
			}))
		} else {
			log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		DB:          pool,
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		ViewUC:      viewUC,
		LedgerUC:    ledgerUC,
		CategoryUC:  usecase.NewCategoryUseCase(categoryRepo),
		SupplierUC:  usecase.NewSupplierUseCase(supplierRepo),
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo, categoryRepo),
		OrderUC:     usecase.NewOrderUseCase(orderRepo, txRunner),
		OrderDocUC:  orderDocUC,
		OrderItemUC: usecase.NewOrderItemUseCase(orderItemRepo),
		UserUC:      usecase.NewUserUseCase(userRepo, bcrypt.DefaultCost),
		Exporter:    export.NewStockReportBuilder(cfg.App.Name),
		RequireAuth: cfg.HTTP.RequireAuth,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("vaciar trazas pendientes")
	}

	log.Info().Msg("aplicación detenida")
}
