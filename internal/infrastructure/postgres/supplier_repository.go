package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo consultas read-only sobre proveedores.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// FirstByProduct devuelve el proveedor del producto con menor id.
// ORDER BY s.id hace determinista el "primer proveedor" (el modelo no define
// un orden entre proveedores del mismo producto). (nil, nil) si no hay.
func (r *SupplierRepo) FirstByProduct(ctx context.Context, productID int64) (*entity.Supplier, error) {
	query := `
		SELECT s.id, s.name, s.contact_info, s.created_at
		FROM suppliers s
		JOIN supplier_products sp ON sp.supplier_id = s.id
		WHERE sp.product_id = $1
		ORDER BY s.id
		LIMIT 1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&s.ID, &s.Name, &s.ContactInfo, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by product: %w", err)
	}
	return &s, nil
}
