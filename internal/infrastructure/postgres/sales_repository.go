package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo consultas read-only sobre la tabla sales (la escribe otro sistema).
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de ventas.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// RecentTotal suma las unidades vendidas del producto en la bodega desde
// `since`. COALESCE garantiza cero (no NULL) cuando no hay filas.
func (r *SalesRepo) RecentTotal(ctx context.Context, productID, warehouseID int64, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM sales
		WHERE product_id = $1 AND warehouse_id = $2 AND sold_at >= $3`
	var total int64
	err := r.q.QueryRow(ctx, query, productID, warehouseID, since).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum recent sales: %w", err)
	}
	return total, nil
}
