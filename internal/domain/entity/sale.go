package entity

import "time"

// Sale representa una venta registrada por otro sistema.
// Para este núcleo es entrada de solo lectura del motor de alertas.
type Sale struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	SoldAt      time.Time
}
