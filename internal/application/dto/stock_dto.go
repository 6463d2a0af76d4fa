package dto

import "time"

// AdjustStockRequest entrada para ajustar stock existente (con signo).
type AdjustStockRequest struct {
	ProductID   int64  `json:"product_id"`
	WarehouseID int64  `json:"warehouse_id"`
	Change      int64  `json:"change"`
	Reason      string `json:"reason"`
}

// AdjustStockResponse salida del ajuste.
type AdjustStockResponse struct {
	ProductID   int64 `json:"product_id"`
	WarehouseID int64 `json:"warehouse_id"`
	NewQuantity int64 `json:"new_quantity"`
}

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
