package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold umbral de stock bajo cuando el producto no define uno propio.
const DefaultLowStockThreshold int64 = 20

// Product representa un producto del catálogo. SKU es único global
// (distintas empresas no pueden repetir SKU). Price con precisión DECIMAL(10,2).
// IsBundle marca productos virtuales compuestos vía ProductBundleItem;
// los bundles no se expanden para el cálculo de alertas.
type Product struct {
	ID                int64
	Name              string
	SKU               string
	Description       string
	Price             decimal.Decimal
	IsBundle          bool
	LowStockThreshold *int64 // nil = usar DefaultLowStockThreshold
	CreatedAt         time.Time
}

// Threshold devuelve el umbral de stock bajo del producto o el default.
func (p *Product) Threshold() int64 {
	if p.LowStockThreshold != nil {
		return *p.LowStockThreshold
	}
	return DefaultLowStockThreshold
}
