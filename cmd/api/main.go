package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/retail-stock/internal/application/alerts"
	"github.com/tu-usuario/retail-stock/internal/application/catalog"
	"github.com/tu-usuario/retail-stock/internal/application/stock"
	infrapdf "github.com/tu-usuario/retail-stock/internal/infrastructure/pdf"
	"github.com/tu-usuario/retail-stock/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/retail-stock/internal/interfaces/http"
	"github.com/tu-usuario/retail-stock/pkg/config"
	"github.com/tu-usuario/retail-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	createProductUC := catalog.NewCreateProductUseCase(txRunner, productRepo)
	productUC := catalog.NewProductUseCase(productRepo)
	warehouseUC := catalog.NewWarehouseUseCase(warehouseRepo)
	adjustUC := stock.NewAdjustUseCase(txRunner)
	lowStockUC := alerts.NewLowStockUseCase(warehouseRepo, inventoryRepo, salesRepo, supplierRepo)
	lowStockPDFUC := alerts.NewPDFUseCase(lowStockUC, infrapdf.NewMarotoReportRenderer())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateProduct: createProductUC,
		ProductUC:     productUC,
		WarehouseUC:   warehouseUC,
		LowStock:      lowStockUC,
		LowStockPDF:   lowStockPDFUC,
		AdjustStock:   adjustUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
