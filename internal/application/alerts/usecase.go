package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-stock/internal/application/dto"
	"github.com/tu-usuario/retail-stock/internal/domain"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// RecentWindowDays ventana de "ventas recientes" para la velocidad de venta.
const RecentWindowDays = 30

// LowStockUseCase calcula alertas de stock bajo por producto-por-bodega.
// Solo lecturas; seguro de correr concurrente con escritores. No exige un
// snapshot único entre consultas: las alertas son informativas y pequeñas
// diferencias de instante entre stock y ventas son aceptables.
type LowStockUseCase struct {
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	salesRepo     repository.SalesRepository
	supplierRepo  repository.SupplierRepository
}

// NewLowStockUseCase construye el motor de alertas.
func NewLowStockUseCase(
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	salesRepo repository.SalesRepository,
	supplierRepo repository.SupplierRepository,
) *LowStockUseCase {
	return &LowStockUseCase{
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		salesRepo:     salesRepo,
		supplierRepo:  supplierRepo,
	}
}

// Compute evalúa cada fila de inventario de la empresa de forma independiente:
// ventas de los últimos 30 días → velocidad diaria → umbral → días hasta
// quiebre → proveedor. Todo-o-nada: cualquier error de lectura aborta el
// cálculo completo sin lista parcial.
func (uc *LowStockUseCase) Compute(ctx context.Context, companyID int64, now time.Time) (*dto.LowStockReport, error) {
	since := now.AddDate(0, 0, -RecentWindowDays)

	warehouses, err := uc.warehouseRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: bodegas de la empresa: %v", domain.ErrStorageRead, err)
	}
	// Empresa sin bodegas: reporte vacío, no es un error.
	if len(warehouses) == 0 {
		return &dto.LowStockReport{Alerts: []dto.LowStockAlert{}}, nil
	}

	rows, err := uc.inventoryRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: inventario de la empresa: %v", domain.ErrStorageRead, err)
	}

	windowDays := decimal.NewFromInt(RecentWindowDays)
	alerts := make([]dto.LowStockAlert, 0)

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cálculo de alertas cancelado: %w", err)
		}

		salesTotal, err := uc.salesRepo.RecentTotal(ctx, row.Product.ID, row.Warehouse.ID, since)
		if err != nil {
			return nil, fmt.Errorf("%w: ventas recientes: %v", domain.ErrStorageRead, err)
		}
		// Sin señal de demanda reciente no hay alerta.
		if salesTotal == 0 {
			continue
		}

		avgDaily := decimal.NewFromInt(salesTotal).Div(windowDays)
		// Guardia explícita contra división por cero aguas abajo.
		if avgDaily.IsZero() {
			continue
		}

		threshold := row.Product.Threshold()
		if row.Inventory.Quantity >= threshold {
			continue
		}

		daysUntilStockout := decimal.NewFromInt(row.Inventory.Quantity).
			Div(avgDaily).Floor().IntPart()

		supplier, err := uc.supplierRepo.FirstByProduct(ctx, row.Product.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: proveedor del producto: %v", domain.ErrStorageRead, err)
		}
		var supplierInfo *dto.SupplierInfo
		if supplier != nil {
			contact := supplier.ContactInfo
			if contact == "" {
				contact = "N/A"
			}
			supplierInfo = &dto.SupplierInfo{
				ID:           supplier.ID,
				Name:         supplier.Name,
				ContactEmail: contact,
			}
		}

		alerts = append(alerts, dto.LowStockAlert{
			ProductID:         row.Product.ID,
			ProductName:       row.Product.Name,
			SKU:               row.Product.SKU,
			WarehouseID:       row.Warehouse.ID,
			WarehouseName:     row.Warehouse.Name,
			CurrentStock:      row.Inventory.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: daysUntilStockout,
			Supplier:          supplierInfo,
		})
	}

	return &dto.LowStockReport{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}
