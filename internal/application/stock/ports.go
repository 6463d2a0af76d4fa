package stock

import (
	"context"

	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD (misma forma
// que el runner del catálogo; lo implementa el mismo adaptador postgres).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		inventories repository.InventoryRepository,
		history repository.InventoryHistoryRepository,
	) error) error
}
