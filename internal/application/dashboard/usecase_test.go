package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// ── Dobles de test ────────────────────────────────────────────────────────────

type stubProductRepo struct {
	items []*entity.Product
	err   error
}

func (r *stubProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (r *stubProductRepo) Delete(context.Context, string) error          { return nil }
func (r *stubProductRepo) List(context.Context, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) ListAll(context.Context) ([]*entity.Product, error) {
	return r.items, r.err
}
func (r *stubProductRepo) UpdateStock(context.Context, string, int) error { return nil }

type stubSaleRepo struct {
	items []*entity.Sale
	err   error
}

func (r *stubSaleRepo) Create(context.Context, *entity.Sale) error { return nil }
func (r *stubSaleRepo) GetByID(context.Context, string) (*entity.Sale, error) {
	return nil, nil
}
func (r *stubSaleRepo) Delete(context.Context, string) error { return nil }
func (r *stubSaleRepo) List(context.Context, int, int) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *stubSaleRepo) ListAll(context.Context) ([]*entity.Sale, error) { return r.items, r.err }

type memoryCache struct {
	store map[string]*dto.DashboardViewsDTO
	hits  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: map[string]*dto.DashboardViewsDTO{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (*dto.DashboardViewsDTO, bool, error) {
	v, ok := c.store[key]
	if ok {
		c.hits++
	}
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, v *dto.DashboardViewsDTO) error {
	c.store[key] = v
	return nil
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestUseCase_GetViews_AplicaAccionesYComputa(t *testing.T) {
	uc := NewUseCase(
		&stubProductRepo{items: []*entity.Product{
			producto("1", "Yogur", "Lácteos", 10, 2.5),
			producto("2", "Mango", "Frutas", 4, 1.2),
		}},
		&stubSaleRepo{},
		nil, // sin cache
	)

	views, err := uc.GetViews(context.Background(), []Action{
		{Field: FieldProductType, Value: "Frutas"},
	}, nowRef)
	require.NoError(t, err)

	require.Len(t, views.InventoryByType, 1)
	assert.Equal(t, "Frutas", views.InventoryByType[0].Type)
}

func TestUseCase_GetViews_ErrorDeFetchSePropaga(t *testing.T) {
	uc := NewUseCase(
		&stubProductRepo{err: errors.New("db caída")},
		&stubSaleRepo{},
		nil,
	)
	_, err := uc.GetViews(context.Background(), nil, nowRef)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "productos", "el error indica qué lectura falló")
}

func TestUseCase_GetViews_SegundaLlamadaUsaCache(t *testing.T) {
	cache := newMemoryCache()
	uc := NewUseCase(
		&stubProductRepo{items: []*entity.Product{producto("1", "Yogur", "Lácteos", 10, 2.5)}},
		&stubSaleRepo{},
		cache,
	)

	v1, err := uc.GetViews(context.Background(), nil, nowRef)
	require.NoError(t, err)
	v2, err := uc.GetViews(context.Background(), nil, nowRef)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.hits, "la segunda llamada debe resolverse desde cache")
	assert.Equal(t, v1, v2, "cache y cómputo devuelven lo mismo")
}

func TestUseCase_GetViews_CriteriosDistintosNoCompartenCache(t *testing.T) {
	cache := newMemoryCache()
	uc := NewUseCase(
		&stubProductRepo{items: []*entity.Product{producto("1", "Yogur", "Lácteos", 10, 2.5)}},
		&stubSaleRepo{},
		cache,
	)

	_, err := uc.GetViews(context.Background(), nil, nowRef)
	require.NoError(t, err)
	_, err = uc.GetViews(context.Background(), []Action{
		{Field: FieldProductType, Value: "Frutas"},
	}, nowRef)
	require.NoError(t, err)

	assert.Zero(t, cache.hits, "criterios distintos generan claves distintas")
	assert.Len(t, cache.store, 2)
}
