package alerts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-stock/internal/domain"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// alertStore datos de lectura compartidos por los repos fake del motor.
type alertStore struct {
	warehouses []*entity.Warehouse
	rows       []repository.StockRow
	sales      map[string]int64 // "productID:warehouseID" → total vendido en ventana
	suppliers  map[int64]*entity.Supplier

	rowsErr     error
	salesErr    error
	supplierErr error
}

func salesKey(productID, warehouseID int64) string {
	return fmt.Sprintf("%d:%d", productID, warehouseID)
}

type fakeWarehouses struct{ s *alertStore }

func (r *fakeWarehouses) Create(context.Context, *entity.Warehouse) (int64, error) {
	return 0, errors.New("no usado")
}
func (r *fakeWarehouses) GetByID(context.Context, int64) (*entity.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouses) ListByCompany(_ context.Context, companyID int64) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range r.s.warehouses {
		if w.CompanyID == companyID {
			list = append(list, w)
		}
	}
	return list, nil
}

type fakeInventories struct{ s *alertStore }

func (r *fakeInventories) Create(context.Context, *entity.Inventory) (int64, error) {
	return 0, errors.New("no usado")
}
func (r *fakeInventories) GetForUpdate(context.Context, int64, int64) (*entity.Inventory, error) {
	return nil, nil
}
func (r *fakeInventories) UpdateQuantity(context.Context, int64, int64) error {
	return errors.New("no usado")
}
func (r *fakeInventories) ListByCompany(_ context.Context, companyID int64) ([]repository.StockRow, error) {
	if r.s.rowsErr != nil {
		return nil, r.s.rowsErr
	}
	var list []repository.StockRow
	for _, row := range r.s.rows {
		if row.Warehouse.CompanyID == companyID {
			list = append(list, row)
		}
	}
	return list, nil
}

type fakeSales struct{ s *alertStore }

func (r *fakeSales) RecentTotal(_ context.Context, productID, warehouseID int64, _ time.Time) (int64, error) {
	if r.s.salesErr != nil {
		return 0, r.s.salesErr
	}
	return r.s.sales[salesKey(productID, warehouseID)], nil
}

type fakeSuppliers struct{ s *alertStore }

func (r *fakeSuppliers) FirstByProduct(_ context.Context, productID int64) (*entity.Supplier, error) {
	if r.s.supplierErr != nil {
		return nil, r.s.supplierErr
	}
	return r.s.suppliers[productID], nil
}

func newEngine(s *alertStore) *LowStockUseCase {
	return NewLowStockUseCase(&fakeWarehouses{s}, &fakeInventories{s}, &fakeSales{s}, &fakeSuppliers{s})
}

// stockRow helper: producto en bodega de la empresa 1 con la cantidad dada.
func stockRow(productID, warehouseID, quantity int64, threshold *int64) repository.StockRow {
	return repository.StockRow{
		Inventory: entity.Inventory{ID: productID*100 + warehouseID, ProductID: productID, WarehouseID: warehouseID, Quantity: quantity},
		Product: entity.Product{
			ID: productID, Name: fmt.Sprintf("Producto %d", productID),
			SKU: fmt.Sprintf("SKU-%d", productID), LowStockThreshold: threshold,
		},
		Warehouse: entity.Warehouse{ID: warehouseID, CompanyID: 1, Name: fmt.Sprintf("Bodega %d", warehouseID)},
	}
}

func baseStore() *alertStore {
	return &alertStore{
		warehouses: []*entity.Warehouse{{ID: 7, CompanyID: 1, Name: "Bodega 7"}},
		sales:      map[string]int64{},
		suppliers:  map[int64]*entity.Supplier{},
	}
}

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestCompute_EmpresaSinBodegas(t *testing.T) {
	s := &alertStore{sales: map[string]int64{}, suppliers: map[int64]*entity.Supplier{}}
	report, err := newEngine(s).Compute(context.Background(), 42, now)
	require.NoError(t, err)
	assert.NotNil(t, report.Alerts)
	assert.Empty(t, report.Alerts)
	assert.Zero(t, report.TotalAlerts)
}

func TestCompute_SinVentasRecientesNoAlerta(t *testing.T) {
	s := baseStore()
	s.rows = []repository.StockRow{stockRow(1, 7, 5, nil)}
	// sin entrada en s.sales → total 0

	report, err := newEngine(s).Compute(context.Background(), 1, now)
	require.NoError(t, err)
	assert.Empty(t, report.Alerts)
}

func TestCompute_DiasHastaQuiebre(t *testing.T) {
	s := baseStore()
	s.rows = []repository.StockRow{stockRow(1, 7, 5, nil)}
	s.sales[salesKey(1, 7)] = 300 // 10/día en la ventana de 30 días

	report, err := newEngine(s).Compute(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)

	a := report.Alerts[0]
	assert.Equal(t, int64(1), a.ProductID)
	assert.Equal(t, "SKU-1", a.SKU)
	assert.Equal(t, int64(7), a.WarehouseID)
	assert.Equal(t, int64(5), a.CurrentStock)
	assert.Equal(t, entity.DefaultLowStockThreshold, a.Threshold)
	assert.Equal(t, int64(0), a.DaysUntilStockout, "floor(5/10) = 0")
	assert.Nil(t, a.Supplier)
	assert.Equal(t, 1, report.TotalAlerts)
}

func TestCompute_StockSobreUmbralNoAlerta(t *testing.T) {
	s := baseStore()
	s.rows = []repository.StockRow{stockRow(1, 7, 25, nil)}
	s.sales[salesKey(1, 7)] = 90

	report, err := newEngine(s).Compute(context.Background(), 1, now)
	require.NoError(t, err)
	assert.Empty(t, report.Alerts, "25 >= umbral 20")
}

func TestCompute_UmbralPropioDelProducto(t *testing.T) {
	threshold := int64(10)
	s := baseStore()
	s.rows = []repository.StockRow{stockRow(1, 7, 5, &threshold)}
	s.sales[salesKey(1, 7)] = 30 // 1/día

	report, err := newEngine(s).Compute(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, int64(10), report.Alerts[0].Threshold)
	assert.Equal(t, int64(5), report.Alerts[0].DaysUntilStockout)
}

func TestCompute_ProveedorConYSinContacto(t *testing.T) {
	s := baseStore()
	s.rows = []repository.StockRow{stockRow(1, 7, 5, nil), stockRow(2, 7, 3, nil)}
	s.sales[salesKey(1, 7)] = 60
	s.sales[salesKey(2, 7)] = 60
	s.suppliers[1] = &entity.Supplier{ID: 4, Name: "Proveedor Uno", ContactInfo: "ventas@uno.co"}
	s.suppliers[2] = &entity.Supplier{ID: 9, Name: "Proveedor Dos"} // sin contacto

	report, err := newEngine(s).Compute(context.Background(), 1, now)
	require.NoError(t, err)
	require.Len(t, report.Alerts, 2)

	require.NotNil(t, report.Alerts[0].Supplier)
	assert.Equal(t, "ventas@uno.co", report.Alerts[0].Supplier.ContactEmail)

	require.NotNil(t, report.Alerts[1].Supplier)
	assert.Equal(t, "N/A", report.Alerts[1].Supplier.ContactEmail)
}

func TestCompute_Idempotente(t *testing.T) {
	s := baseStore()
	s.rows = []repository.StockRow{stockRow(1, 7, 5, nil), stockRow(2, 7, 30, nil)}
	s.sales[salesKey(1, 7)] = 120
	s.sales[salesKey(2, 7)] = 120
	s.suppliers[1] = &entity.Supplier{ID: 4, Name: "Proveedor Uno", ContactInfo: "ventas@uno.co"}

	engine := newEngine(s)
	first, err := engine.Compute(context.Background(), 1, now)
	require.NoError(t, err)
	second, err := engine.Compute(context.Background(), 1, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompute_ErrorDeLecturaAbortaTodo(t *testing.T) {
	s := baseStore()
	s.rows = []repository.StockRow{stockRow(1, 7, 5, nil)}
	s.salesErr = errors.New("timeout")

	report, err := newEngine(s).Compute(context.Background(), 1, now)
	require.ErrorIs(t, err, domain.ErrStorageRead)
	assert.Nil(t, report, "sin lista parcial junto a un error")
}

func TestCompute_ContextoCancelado(t *testing.T) {
	s := baseStore()
	s.rows = []repository.StockRow{stockRow(1, 7, 5, nil)}
	s.sales[salesKey(1, 7)] = 60

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := newEngine(s).Compute(ctx, 1, now)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}
