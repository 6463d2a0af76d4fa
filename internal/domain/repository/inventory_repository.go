package repository

import (
	"context"

	"github.com/tu-usuario/retail-stock/internal/domain/entity"
)

// StockRow fila del join inventario × producto × bodega.
// La produce la DB en una sola consulta; el motor de alertas la recorre.
type StockRow struct {
	Inventory entity.Inventory
	Product   entity.Product
	Warehouse entity.Warehouse
}

// InventoryRepository define el puerto para las filas de stock por bodega+producto.
// Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	// Create inserta la fila de inventario y devuelve el ID generado.
	Create(ctx context.Context, inv *entity.Inventory) (int64, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Devuelve (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, id, quantity int64) error
	// ListByCompany devuelve todas las filas de stock de las bodegas de la
	// empresa, con su producto y bodega.
	ListByCompany(ctx context.Context, companyID int64) ([]StockRow, error)
}

// InventoryHistoryRepository puerto append-only del historial de cambios.
type InventoryHistoryRepository interface {
	Append(ctx context.Context, h *entity.InventoryHistory) error
}
