package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/retail-stock/internal/domain"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y devuelve el id SERIAL generado.
// La violación del unique de SKU se traduce a domain.ErrDuplicateSKU.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (name, sku, description, price, is_bundle, low_stock_threshold, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		product.Name, product.SKU, product.Description, product.Price,
		product.IsBundle, product.LowStockThreshold, product.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateSKU
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	product.ID = id
	return id, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, description, price, is_bundle, low_stock_threshold, created_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.IsBundle, &p.LowStockThreshold, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetBySKU obtiene un producto por SKU (único global).
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, description, price, is_bundle, low_stock_threshold, created_at
		FROM products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, sku).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.IsBundle, &p.LowStockThreshold, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, sku, description, price, is_bundle, low_stock_threshold, created_at
		FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.IsBundle, &p.LowStockThreshold, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
