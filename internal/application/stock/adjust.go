package stock

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-stock/internal/domain"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// AdjustInput entrada para ajustar el stock de un producto en una bodega.
// Change con signo: positivo entrada, negativo salida.
type AdjustInput struct {
	ProductID   int64
	WarehouseID int64
	Change      int64
	Reason      string
}

// AdjustUseCase muta la cantidad de una fila de inventario existente.
// Toda mutación emite su registro en inventory_history, en la misma
// transacción y con bloqueo de fila (SELECT FOR UPDATE).
type AdjustUseCase struct {
	txRunner TxRunner
}

// NewAdjustUseCase construye el caso de uso.
func NewAdjustUseCase(txRunner TxRunner) *AdjustUseCase {
	return &AdjustUseCase{txRunner: txRunner}
}

// Adjust aplica el cambio y devuelve la cantidad resultante.
// Rechaza ajustes que dejarían la cantidad negativa.
func (uc *AdjustUseCase) Adjust(ctx context.Context, in AdjustInput) (int64, error) {
	if in.Change == 0 {
		return 0, domain.ErrInvalidQuantity
	}
	if in.Reason == "" {
		return 0, &domain.MissingFieldError{Field: "reason"}
	}

	var newQuantity int64
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		inventories repository.InventoryRepository,
		history repository.InventoryHistoryRepository,
	) error {
		inv, err := inventories.GetForUpdate(ctx, in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		q := inv.Quantity + in.Change
		if q < 0 {
			return domain.ErrInsufficientStock
		}
		if err := inventories.UpdateQuantity(ctx, inv.ID, q); err != nil {
			return err
		}
		if err := history.Append(ctx, &entity.InventoryHistory{
			InventoryID: inv.ID,
			Change:      in.Change,
			Reason:      in.Reason,
			ChangedAt:   time.Now(),
		}); err != nil {
			return err
		}
		newQuantity = q
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}
