package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/retail-stock/internal/application/catalog"
	"github.com/tu-usuario/retail-stock/internal/application/stock"
	"github.com/tu-usuario/retail-stock/internal/domain"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// Ensure TxRunner implements catalog.TxRunner y stock.TxRunner.
var _ catalog.TxRunner = (*TxRunner)(nil)
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción serializable, ejecuta fn con repos atados a la tx
// y hace Commit o Rollback. Un fallo de Commit se envuelve en ErrCommitFailed.
// Serializable: el chequeo-luego-insert de SKU confía en el unique de la base
// como backstop y no debe entrelazarse con estado sin confirmar de otra invocación.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	inventories repository.InventoryRepository,
	history repository.InventoryHistoryRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewInventoryRepository(tx), NewInventoryHistoryRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCommitFailed, err)
	}
	return nil
}
