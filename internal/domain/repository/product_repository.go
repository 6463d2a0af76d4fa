package repository

import (
	"context"

	"github.com/tu-usuario/retail-stock/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando no hay fila.
type ProductRepository interface {
	// Create inserta el producto y devuelve el ID generado por la base.
	// Una violación del unique de SKU se traduce a domain.ErrDuplicateSKU.
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
