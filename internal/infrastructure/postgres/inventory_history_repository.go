package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo adaptador append-only del historial de inventario.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Append registra un cambio de cantidad en inventory_history.
func (r *InventoryHistoryRepo) Append(ctx context.Context, h *entity.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history (inventory_id, change, reason, changed_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, h.InventoryID, h.Change, h.Reason, h.ChangedAt)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}
