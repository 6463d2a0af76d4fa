package entity

import "time"

// Inventory representa el stock actual de un producto en una bodega.
// Único por (ProductID, WarehouseID); Quantity nunca negativa.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
}

// InventoryHistory registro append-only de cambios de cantidad.
// Toda mutación de Inventory.Quantity debe emitir uno (el alta inicial
// de stock en la creación del producto no cuenta como cambio).
type InventoryHistory struct {
	ID          int64
	InventoryID int64
	Change      int64 // con signo: + entrada, - salida
	Reason      string
	ChangedAt   time.Time
}
