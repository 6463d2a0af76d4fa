package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con inventario inicial
// opcional. Price e InitialQuantity aceptan número o string numérico.
type CreateProductRequest struct {
	Name            string   `json:"name"`
	SKU             string   `json:"sku"`
	Description     string   `json:"description"`
	Price           Numeric  `json:"price"`
	WarehouseID     *int64   `json:"warehouse_id"`
	InitialQuantity *Numeric `json:"initial_quantity"`
}

// CreateProductResponse salida de la creación.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	IsBundle          bool            `json:"is_bundle"`
	LowStockThreshold *int64          `json:"low_stock_threshold,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
