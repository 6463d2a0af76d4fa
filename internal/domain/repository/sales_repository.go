package repository

import (
	"context"
	"time"
)

// SalesRepository consultas de lectura sobre ventas registradas por otro sistema.
// Las implementaciones son read-only (no modifican datos).
type SalesRepository interface {
	// RecentTotal devuelve la suma de unidades vendidas del producto en la
	// bodega con sold_at >= since. Cero (no error) cuando no hay ventas.
	RecentTotal(ctx context.Context, productID, warehouseID int64, since time.Time) (int64, error)
}
