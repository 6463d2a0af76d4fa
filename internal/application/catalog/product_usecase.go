package catalog

import (
	"context"

	"github.com/tu-usuario/retail-stock/internal/application/dto"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// ProductUseCase lecturas sobre el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Description:       p.Description,
		Price:             p.Price,
		IsBundle:          p.IsBundle,
		LowStockThreshold: p.LowStockThreshold,
		CreatedAt:         p.CreatedAt,
	}
}
