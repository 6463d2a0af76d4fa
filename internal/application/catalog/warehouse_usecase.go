package catalog

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-stock/internal/application/dto"
	"github.com/tu-usuario/retail-stock/internal/domain"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// WarehouseUseCase altas y lecturas de bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega para una empresa.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, &domain.MissingFieldError{Field: "name"}
	}
	if in.CompanyID == 0 {
		return nil, &domain.MissingFieldError{Field: "company_id"}
	}
	warehouse := &entity.Warehouse{
		CompanyID: in.CompanyID,
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: time.Now(),
	}
	id, err := uc.repo.Create(ctx, warehouse)
	if err != nil {
		return nil, err
	}
	warehouse.ID = id
	return toWarehouseResponse(warehouse), nil
}

// ListByCompany lista las bodegas de una empresa.
func (uc *WarehouseUseCase) ListByCompany(ctx context.Context, companyID int64) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Location:  w.Location,
		CreatedAt: w.CreatedAt,
	}
}
