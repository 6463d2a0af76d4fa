package repository

import (
	"context"

	"github.com/tu-usuario/retail-stock/internal/domain/entity"
)

// SupplierRepository consultas de lectura sobre proveedores.
type SupplierRepository interface {
	// FirstByProduct devuelve el proveedor asociado al producto con menor ID
	// (desempate determinista; el origen no define un orden entre proveedores).
	// Devuelve (nil, nil) cuando el producto no tiene proveedor.
	FirstByProduct(ctx context.Context, productID int64) (*entity.Supplier, error)
}
