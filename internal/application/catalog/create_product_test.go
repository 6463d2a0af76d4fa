package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-stock/internal/domain"
	"github.com/tu-usuario/retail-stock/internal/domain/entity"
	"github.com/tu-usuario/retail-stock/internal/domain/repository"
)

// memStore almacén en memoria compartido por los repos fake. El TxRunner fake
// toma un snapshot antes de ejecutar fn y lo restaura ante cualquier error,
// imitando el Rollback de la transacción real.
type memStore struct {
	products  []*entity.Product
	inventory []*entity.Inventory
	history   []*entity.InventoryHistory

	nextProductID   int64
	nextInventoryID int64

	productInsertErr error
	failCommit       bool
}

func newMemStore() *memStore { return &memStore{} }

type snapshot struct {
	products  []*entity.Product
	inventory []*entity.Inventory
	history   []*entity.InventoryHistory
}

func (s *memStore) snapshot() snapshot {
	return snapshot{
		products:  append([]*entity.Product(nil), s.products...),
		inventory: append([]*entity.Inventory(nil), s.inventory...),
		history:   append([]*entity.InventoryHistory(nil), s.history...),
	}
}

func (s *memStore) restore(sn snapshot) {
	s.products = sn.products
	s.inventory = sn.inventory
	s.history = sn.history
}

type memProducts struct{ s *memStore }

func (r *memProducts) Create(_ context.Context, p *entity.Product) (int64, error) {
	if r.s.productInsertErr != nil {
		return 0, r.s.productInsertErr
	}
	for _, existing := range r.s.products {
		if existing.SKU == p.SKU {
			return 0, domain.ErrDuplicateSKU
		}
	}
	r.s.nextProductID++
	cp := *p
	cp.ID = r.s.nextProductID
	r.s.products = append(r.s.products, &cp)
	return cp.ID, nil
}

func (r *memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProducts) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProducts) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return append([]*entity.Product(nil), r.s.products...), nil
}

type memInventories struct{ s *memStore }

func (r *memInventories) Create(_ context.Context, inv *entity.Inventory) (int64, error) {
	r.s.nextInventoryID++
	cp := *inv
	cp.ID = r.s.nextInventoryID
	r.s.inventory = append(r.s.inventory, &cp)
	return cp.ID, nil
}

func (r *memInventories) GetForUpdate(_ context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	for _, inv := range r.s.inventory {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *memInventories) UpdateQuantity(_ context.Context, id, quantity int64) error {
	for _, inv := range r.s.inventory {
		if inv.ID == id {
			inv.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memInventories) ListByCompany(_ context.Context, _ int64) ([]repository.StockRow, error) {
	return nil, nil
}

type memHistory struct{ s *memStore }

func (r *memHistory) Append(_ context.Context, h *entity.InventoryHistory) error {
	cp := *h
	r.s.history = append(r.s.history, &cp)
	return nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	inventories repository.InventoryRepository,
	history repository.InventoryHistoryRepository,
) error) error {
	sn := r.s.snapshot()
	if err := fn(&memProducts{r.s}, &memInventories{r.s}, &memHistory{r.s}); err != nil {
		r.s.restore(sn)
		return err
	}
	if r.s.failCommit {
		r.s.restore(sn)
		return fmt.Errorf("%w: commit simulado", domain.ErrCommitFailed)
	}
	return nil
}

func newCreateUC(s *memStore) *CreateProductUseCase {
	return NewCreateProductUseCase(&memTxRunner{s: s}, &memProducts{s: s})
}

func strPtr(v string) *string { return &v }
func intPtr(v int64) *int64   { return &v }

func TestCreateProduct_CamposRequeridos(t *testing.T) {
	cases := []struct {
		name  string
		in    CreateProductInput
		field string
	}{
		{"sin name", CreateProductInput{SKU: "ABC-1", Price: "10"}, "name"},
		{"sin sku", CreateProductInput{Name: "Café", Price: "10"}, "sku"},
		{"sin price", CreateProductInput{Name: "Café", SKU: "ABC-1"}, "price"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newMemStore()
			_, err := newCreateUC(s).Create(context.Background(), tc.in)
			require.ErrorIs(t, err, domain.ErrMissingField)

			var mfe *domain.MissingFieldError
			require.ErrorAs(t, err, &mfe)
			assert.Equal(t, tc.field, mfe.Field)
			assert.Empty(t, s.products, "no debe persistir nada")
		})
	}
}

func TestCreateProduct_PrecioInvalido(t *testing.T) {
	for _, price := range []string{"abc", "-5", "10,50"} {
		s := newMemStore()
		_, err := newCreateUC(s).Create(context.Background(), CreateProductInput{
			Name: "Café", SKU: "ABC-1", Price: price,
		})
		require.ErrorIs(t, err, domain.ErrInvalidPrice, "price=%q", price)
		assert.Empty(t, s.products)
	}
}

func TestCreateProduct_SKUDuplicado(t *testing.T) {
	s := newMemStore()
	uc := newCreateUC(s)
	_, err := uc.Create(context.Background(), CreateProductInput{Name: "Café", SKU: "ABC-1", Price: "10"})
	require.NoError(t, err)

	before := len(s.products)
	_, err = uc.Create(context.Background(), CreateProductInput{Name: "Otro", SKU: "ABC-1", Price: "20"})
	require.ErrorIs(t, err, domain.ErrDuplicateSKU)
	assert.Len(t, s.products, before, "el conteo de productos no debe cambiar")
}

// La carrera chequeo-luego-insert: el pre-chequeo no ve el duplicado pero el
// insert devuelve la violación del unique; debe mapearse al mismo error.
func TestCreateProduct_SKUDuplicado_BackstopDelInsert(t *testing.T) {
	s := newMemStore()
	s.productInsertErr = domain.ErrDuplicateSKU
	_, err := newCreateUC(s).Create(context.Background(), CreateProductInput{
		Name: "Café", SKU: "ABC-1", Price: "10",
	})
	require.ErrorIs(t, err, domain.ErrDuplicateSKU)
	assert.Empty(t, s.products)
}

func TestCreateProduct_CantidadInvalidaRevierteProducto(t *testing.T) {
	for _, qty := range []string{"abc", "-1", "2.5"} {
		s := newMemStore()
		_, err := newCreateUC(s).Create(context.Background(), CreateProductInput{
			Name: "Café", SKU: "ABC-1", Price: "10",
			WarehouseID: intPtr(7), InitialQuantity: strPtr(qty),
		})
		require.ErrorIs(t, err, domain.ErrInvalidQuantity, "qty=%q", qty)
		// Rollback total: también el producto insertado antes del fallo.
		assert.Empty(t, s.products, "qty=%q", qty)
		assert.Empty(t, s.inventory, "qty=%q", qty)
	}
}

func TestCreateProduct_ConInventarioInicial(t *testing.T) {
	s := newMemStore()
	id, err := newCreateUC(s).Create(context.Background(), CreateProductInput{
		Name: "Café", SKU: "ABC-1", Price: "19.99",
		WarehouseID: intPtr(7), InitialQuantity: strPtr("15"),
	})
	require.NoError(t, err)
	require.Positive(t, id)

	require.Len(t, s.inventory, 1)
	inv := s.inventory[0]
	assert.Equal(t, id, inv.ProductID)
	assert.Equal(t, int64(7), inv.WarehouseID)
	assert.Equal(t, int64(15), inv.Quantity)
	// Sin fila de historial: el alta inicial no es un "cambio" de stock.
	assert.Empty(t, s.history)
}

func TestCreateProduct_SoloUnCampoDeInventario(t *testing.T) {
	cases := []struct {
		name string
		in   CreateProductInput
	}{
		{"solo bodega", CreateProductInput{Name: "Café", SKU: "A-1", Price: "10", WarehouseID: intPtr(7)}},
		{"solo cantidad", CreateProductInput{Name: "Café", SKU: "A-2", Price: "10", InitialQuantity: strPtr("5")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newMemStore()
			id, err := newCreateUC(s).Create(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Positive(t, id)
			assert.Empty(t, s.inventory, "no debe crear fila de inventario")
		})
	}
}

func TestCreateProduct_FalloDeInsert(t *testing.T) {
	s := newMemStore()
	s.productInsertErr = errors.New("conexión perdida")
	_, err := newCreateUC(s).Create(context.Background(), CreateProductInput{
		Name: "Café", SKU: "ABC-1", Price: "10",
	})
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Empty(t, s.products)
}

func TestCreateProduct_FalloDeCommit(t *testing.T) {
	s := newMemStore()
	s.failCommit = true
	_, err := newCreateUC(s).Create(context.Background(), CreateProductInput{
		Name: "Café", SKU: "ABC-1", Price: "10",
		WarehouseID: intPtr(7), InitialQuantity: strPtr("3"),
	})
	require.ErrorIs(t, err, domain.ErrCommitFailed)
	assert.Empty(t, s.products)
	assert.Empty(t, s.inventory)
}
