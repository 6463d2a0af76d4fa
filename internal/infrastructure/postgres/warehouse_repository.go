package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega y devuelve el id generado.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) (int64, error) {
	query := `
		INSERT INTO warehouses (company_id, name, location, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		warehouse.CompanyID, warehouse.Name, warehouse.Location, warehouse.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert warehouse: %w", err)
	}
	warehouse.ID = id
	return id, nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, name, location, created_at
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.CompanyID, &w.Name, &w.Location, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// ListByCompany lista las bodegas de una empresa.
func (r *WarehouseRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, name, location, created_at
		FROM warehouses WHERE company_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Name, &w.Location, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
