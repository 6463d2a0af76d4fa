package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta la fila de inventario inicial y devuelve el id generado.
// El unique (product_id, warehouse_id) garantiza una fila por combinación.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) (int64, error) {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, inv.ProductID, inv.WarehouseID, inv.Quantity).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert inventory: %w", err)
	}
	inv.ID = id
	return id, nil
}

// GetForUpdate obtiene la fila de inventario y la bloquea (SELECT FOR UPDATE).
// Devuelve (nil, nil) si la combinación producto-bodega no tiene fila.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity fija la cantidad de una fila de inventario.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id, quantity int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory SET quantity = $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// ListByCompany devuelve las filas de stock de todas las bodegas de la empresa
// con su producto y bodega, en una sola consulta (join).
func (r *InventoryRepo) ListByCompany(ctx context.Context, companyID int64) ([]repository.StockRow, error) {
	query := `
		SELECT i.id, i.product_id, i.warehouse_id, i.quantity,
		       p.name, p.sku, p.description, p.price, p.is_bundle, p.low_stock_threshold, p.created_at,
		       w.company_id, w.name, w.location, w.created_at
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE w.company_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by company: %w", err)
	}
	defer rows.Close()
	var list []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		if err := rows.Scan(
			&row.Inventory.ID, &row.Inventory.ProductID, &row.Inventory.WarehouseID, &row.Inventory.Quantity,
			&row.Product.Name, &row.Product.SKU, &row.Product.Description, &row.Product.Price,
			&row.Product.IsBundle, &row.Product.LowStockThreshold, &row.Product.CreatedAt,
			&row.Warehouse.CompanyID, &row.Warehouse.Name, &row.Warehouse.Location, &row.Warehouse.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		row.Product.ID = row.Inventory.ProductID
		row.Warehouse.ID = row.Inventory.WarehouseID
		list = append(list, row)
	}
	return list, rows.Err()
}
