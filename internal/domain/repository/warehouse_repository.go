package repository

import (
	"context"

	"github.com/tu-usuario/retail-stock/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Warehouse, error)
}
