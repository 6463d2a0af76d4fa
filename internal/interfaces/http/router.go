package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-stock/internal/application/alerts"
	"github.com/tu-usuario/retail-stock/internal/application/catalog"
	"github.com/tu-usuario/retail-stock/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateProduct *catalog.CreateProductUseCase
	ProductUC     *catalog.ProductUseCase
	WarehouseUC   *catalog.WarehouseUseCase
	LowStock      *alerts.LowStockUseCase
	LowStockPDF   *alerts.PDFUseCase
	AdjustStock   *stock.AdjustUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CreateProduct, deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)

	// Inventory adjustments
	invGroup := api.Group("/inventory")
	stockHandler := NewStockHandler(deps.AdjustStock)
	invGroup.Post("/adjustments", stockHandler.Adjust)

	// Per-company reads
	companies := api.Group("/companies")
	alertsHandler := NewAlertsHandler(deps.LowStock, deps.LowStockPDF)
	companies.Get("/:company_id/warehouses", warehouseHandler.ListByCompany)
	companies.Get("/:company_id/alerts/low-stock", alertsHandler.LowStock)
	companies.Get("/:company_id/alerts/low-stock/pdf", alertsHandler.LowStockPDF)
}
