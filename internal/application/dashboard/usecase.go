package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// ViewsCache puerto opcional para cachear vistas ya computadas. La
// corrección no depende de él: es solo un atajo con TTL corto.
type ViewsCache interface {
	Get(ctx context.Context, key string) (*dto.DashboardViewsDTO, bool, error)
	Set(ctx context.Context, key string, views *dto.DashboardViewsDTO) error
}

// UseCase orquesta el dashboard: lectura masiva de productos y ventas,
// aplicación de filtros vía reducer y recomputación de las vistas.
//
// Fuente de datos: lecturas bulk sin filtrado en servidor; todo el
// filtrado y la agregación ocurren en memoria en este proceso.
type UseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	cache       ViewsCache
}

// NewUseCase construye el caso de uso. cache puede ser una implementación
// noop.
func NewUseCase(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	cache ViewsCache,
) *UseCase {
	return &UseCase{productRepo: productRepo, saleRepo: saleRepo, cache: cache}
}

// GetViews devuelve las seis vistas derivadas para los filtros dados.
// actions se aplican en orden sobre los criterios por defecto (una acción
// por dimensión provista). now se inyecta para determinismo.
//
// Las dos lecturas bulk son independientes y van en paralelo.
func (uc *UseCase) GetViews(
	ctx context.Context,
	actions []Action,
	now time.Time,
) (*dto.DashboardViewsDTO, error) {
	ctl := NewController()
	for _, a := range actions {
		ctl.Dispatch(a)
	}
	criteria := ctl.Criteria()

	// Clave por criterios + día: las vistas dependen del día de "ahora"
	// (días-a-vencer, ventanas de crecimiento).
	cacheKey := criteria.CacheKey() + ":" + now.Format(dateLayout)
	if uc.cache != nil {
		if views, ok, err := uc.cache.Get(ctx, cacheKey); err == nil && ok {
			return views, nil
		}
	}

	type productsResult struct {
		items []*entity.Product
		err   error
	}
	type salesResult struct {
		items []*entity.Sale
		err   error
	}
	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		items, err := uc.productRepo.ListAll(ctx)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.saleRepo.ListAll(ctx)
		salesCh <- salesResult{items, err}
	}()

	products := <-productsCh
	sales := <-salesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}

	ctl.ReplaceData(products.items, sales.items)
	views := ctl.Views(now)

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, cacheKey, views) // best effort
	}
	return views, nil
}
