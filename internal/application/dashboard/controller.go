package dashboard

import (
	"sync"
	"time"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// Controller mantiene el snapshot de registros y el estado de filtros, y
// recomputa las vistas derivadas cuando cualquiera de los dos cambia.
//
// Política de concurrencia: escritor único sobre criteria y snapshot
// (RWMutex). Views siempre computa sobre UN snapshot consistente de
// criterios: nunca una vista con el valor viejo de una dimensión y el
// nuevo de otra.
type Controller struct {
	mu       sync.RWMutex
	products []*entity.Product
	sales    []*entity.Sale
	criteria Criteria
}

// NewController construye el controlador con criterios por defecto y sin
// datos.
func NewController() *Controller {
	return &Controller{criteria: DefaultCriteria()}
}

// ReplaceData sustituye las colecciones fuente completas (nuevo fetch).
// El núcleo no tiene modo incremental: actualizaciones concurrentes se
// resuelven re-obteniendo y reemplazando todo el snapshot.
func (ctl *Controller) ReplaceData(products []*entity.Product, sales []*entity.Sale) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.products = products
	ctl.sales = sales
}

// Dispatch aplica una acción del reducer sobre el estado de filtros.
func (ctl *Controller) Dispatch(a Action) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.criteria = Apply(ctl.criteria, a)
}

// ClearFilters restaura todas las dimensiones a su valor por defecto.
func (ctl *Controller) ClearFilters() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.criteria = DefaultCriteria()
}

// Criteria devuelve una copia del estado de filtros actual.
func (ctl *Controller) Criteria() Criteria {
	ctl.mu.RLock()
	defer ctl.mu.RUnlock()
	return ctl.criteria
}

// Views recomputa las seis vistas derivadas desde el snapshot actual.
// Re-derivación pura: con el mismo (products, sales, criteria, now) el
// resultado es idéntico.
func (ctl *Controller) Views(now time.Time) *dto.DashboardViewsDTO {
	ctl.mu.RLock()
	products, sales, criteria := ctl.products, ctl.sales, ctl.criteria
	ctl.mu.RUnlock()
	return ComputeViews(products, sales, criteria, now)
}
