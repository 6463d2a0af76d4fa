package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-stock/internal/domain"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// CreateProductInput entrada tipada del servicio de escritura (el handler HTTP
// hace el parse del body). Price e InitialQuantity llegan como texto crudo
// porque el contrato admite número o string numérico.
type CreateProductInput struct {
	Name            string
	SKU             string
	Description     string
	Price           string
	WarehouseID     *int64
	InitialQuantity *string
}

// CreateProductUseCase crea un producto y, opcionalmente, su fila de
// inventario inicial como unidad atómica (una sola transacción).
type CreateProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create valida la entrada y persiste producto + inventario inicial en una
// transacción. El pre-chequeo de SKU es solo atajo: la violación del unique
// en el insert también se traduce a ErrDuplicateSKU (carrera conocida entre
// chequeo e insert; el constraint de la base es la verdad).
// Sin fila en inventory_history: el alta inicial no es un "cambio" de stock.
func (uc *CreateProductUseCase) Create(ctx context.Context, in CreateProductInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, &domain.MissingFieldError{Field: "name"}
	}
	if strings.TrimSpace(in.SKU) == "" {
		return 0, &domain.MissingFieldError{Field: "sku"}
	}
	if strings.TrimSpace(in.Price) == "" {
		return 0, &domain.MissingFieldError{Field: "price"}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || price.IsNegative() {
		return 0, domain.ErrInvalidPrice
	}

	// Atajo de rechazo rápido; ignoramos el error de lectura porque el
	// insert dentro de la tx es el backstop autoritativo.
	existing, _ := uc.productRepo.GetBySKU(ctx, in.SKU)
	if existing != nil {
		return 0, domain.ErrDuplicateSKU
	}

	product := &entity.Product{
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Price:       price,
		CreatedAt:   time.Now(),
	}

	var productID int64
	err = uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		inventories repository.InventoryRepository,
		_ repository.InventoryHistoryRepository,
	) error {
		id, err := products.Create(ctx, product)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateSKU) {
				return domain.ErrDuplicateSKU
			}
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		productID = id

		// Solo se crea inventario si vienen ambos campos; uno solo se ignora.
		if in.WarehouseID == nil || in.InitialQuantity == nil {
			return nil
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(*in.InitialQuantity), 10, 64)
		if err != nil || qty < 0 {
			// Aborta la transacción completa: también revierte el producto.
			return domain.ErrInvalidQuantity
		}
		if _, err := inventories.Create(ctx, &entity.Inventory{
			ProductID:   productID,
			WarehouseID: *in.WarehouseID,
			Quantity:    qty,
		}); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return productID, nil
}
