package dto

// SupplierInfo bloque de proveedor dentro de una alerta.
// ContactEmail lleva "N/A" literal si el proveedor no tiene contacto.
type SupplierInfo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlert alerta de stock bajo para un producto en una bodega.
type LowStockAlert struct {
	ProductID         int64         `json:"product_id"`
	ProductName       string        `json:"product_name"`
	SKU               string        `json:"sku"`
	WarehouseID       int64         `json:"warehouse_id"`
	WarehouseName     string        `json:"warehouse_name"`
	CurrentStock      int64         `json:"current_stock"`
	Threshold         int64         `json:"threshold"`
	DaysUntilStockout int64         `json:"days_until_stockout"`
	Supplier          *SupplierInfo `json:"supplier"`
}

// LowStockReport reporte completo de alertas de una empresa.
type LowStockReport struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
