package catalog

import (
	"context"

	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad producto + inventario:
// Commit si fn devuelve nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		inventories repository.InventoryRepository,
		history repository.InventoryHistoryRepository,
	) error) error
}
