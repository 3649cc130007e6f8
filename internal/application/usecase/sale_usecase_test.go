package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria: los repos guardan en maps y el tx runner pasa los mismos
// repos al callback. Si el callback falla, se restaura el snapshot (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(_ context.Context, id string, stock int) error {
	if p, ok := r.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return r.all(), nil
}

func (r *memProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	return r.all(), nil
}

func (r *memProductRepo) all() []*entity.Product {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

type memSaleRepo struct {
	sales map[string]*entity.Sale
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *memSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSaleRepo) Delete(_ context.Context, id string) error {
	delete(r.sales, id)
	return nil
}

func (r *memSaleRepo) List(_ context.Context, _, _ int) ([]*entity.Sale, error) {
	return r.all(), nil
}

func (r *memSaleRepo) ListAll(_ context.Context) ([]*entity.Sale, error) {
	return r.all(), nil
}

func (r *memSaleRepo) all() []*entity.Sale {
	out := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		cp := *s
		out = append(out, &cp)
	}
	return out
}

type memTxRunner struct {
	sales    *memSaleRepo
	products *memProductRepo
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	// Snapshot para simular rollback.
	prevSales := make(map[string]*entity.Sale, len(tx.sales.sales))
	for k, v := range tx.sales.sales {
		cp := *v
		prevSales[k] = &cp
	}
	prevProducts := make(map[string]*entity.Product, len(tx.products.products))
	for k, v := range tx.products.products {
		cp := *v
		prevProducts[k] = &cp
	}
	if err := fn(tx.sales, tx.products); err != nil {
		tx.sales.sales = prevSales
		tx.products.products = prevProducts
		return err
	}
	return nil
}

func seedProduct(t *testing.T, repo *memProductRepo, id string, stock int) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entity.Product{
		ID:        id,
		Name:      "Leche entera",
		EntryDate: time.Now(),
		Price:     decimal.NewFromFloat(2.50),
		Stock:     stock,
		Type:      "Lácteos",
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleCreate_DescuentaStock(t *testing.T) {
	products := newMemProductRepo()
	sales := newMemSaleRepo()
	seedProduct(t, products, "p1", 10)
	uc := usecase.NewSaleUseCase(sales, &memTxRunner{sales: sales, products: products})

	out, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 3, Type: "sale",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 3, out.Quantity)

	p, err := products.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock, "el stock debe descontarse en la misma operación")
	assert.Len(t, sales.sales, 1, "la venta debe quedar persistida")
}

func TestSaleCreate_BajaTambienDescuentaStock(t *testing.T) {
	products := newMemProductRepo()
	sales := newMemSaleRepo()
	seedProduct(t, products, "p1", 5)
	uc := usecase.NewSaleUseCase(sales, &memTxRunner{sales: sales, products: products})

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 2, Type: "disposal",
	})
	require.NoError(t, err)

	p, _ := products.GetByID(context.Background(), "p1")
	assert.Equal(t, 3, p.Stock, "una baja descuenta stock igual que una venta")
}

func TestSaleCreate_StockInsuficiente(t *testing.T) {
	products := newMemProductRepo()
	sales := newMemSaleRepo()
	seedProduct(t, products, "p1", 2)
	uc := usecase.NewSaleUseCase(sales, &memTxRunner{sales: sales, products: products})

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 5, Type: "sale",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := products.GetByID(context.Background(), "p1")
	assert.Equal(t, 2, p.Stock, "el stock no debe cambiar si la venta falla")
	assert.Empty(t, sales.sales, "la venta no debe persistirse si falla")
}

func TestSaleCreate_ProductoInexistente(t *testing.T) {
	products := newMemProductRepo()
	sales := newMemSaleRepo()
	uc := usecase.NewSaleUseCase(sales, &memTxRunner{sales: sales, products: products})

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: "no-existe", Quantity: 1, Type: "sale",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleCreate_TipoInvalido(t *testing.T) {
	products := newMemProductRepo()
	sales := newMemSaleRepo()
	seedProduct(t, products, "p1", 10)
	uc := usecase.NewSaleUseCase(sales, &memTxRunner{sales: sales, products: products})

	for _, tipo := range []string{"", "venta", "SALE"} {
		_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
			ProductID: "p1", Quantity: 1, Type: tipo,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %q debe rechazarse", tipo)
	}
}

func TestSaleCreate_CantidadInvalida(t *testing.T) {
	products := newMemProductRepo()
	sales := newMemSaleRepo()
	seedProduct(t, products, "p1", 10)
	uc := usecase.NewSaleUseCase(sales, &memTxRunner{sales: sales, products: products})

	for _, qty := range []int{0, -1} {
		_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
			ProductID: "p1", Quantity: qty, Type: "sale",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

func TestSaleCreate_FechaExplicita(t *testing.T) {
	products := newMemProductRepo()
	sales := newMemSaleRepo()
	seedProduct(t, products, "p1", 10)
	uc := usecase.NewSaleUseCase(sales, &memTxRunner{sales: sales, products: products})

	out, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 1, Date: "2026-08-15", Type: "sale",
	})
	require.NoError(t, err)
	assert.Equal(t, 2026, out.Date.Year())
	assert.Equal(t, time.August, out.Date.Month())
	assert.Equal(t, 15, out.Date.Day())
}

func TestSaleDelete_NoReponeStock(t *testing.T) {
	products := newMemProductRepo()
	sales := newMemSaleRepo()
	seedProduct(t, products, "p1", 10)
	uc := usecase.NewSaleUseCase(sales, &memTxRunner{sales: sales, products: products})

	out, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		ProductID: "p1", Quantity: 4, Type: "sale",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))

	p, _ := products.GetByID(context.Background(), "p1")
	assert.Equal(t, 6, p.Stock, "borrar el registro no repone el stock")
}
