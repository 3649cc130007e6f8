package dashboard

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

func TestController_RecomputaAlReemplazarDatos(t *testing.T) {
	ctl := NewController()

	views := ctl.Views(nowRef)
	assert.Empty(t, views.InventoryByType, "sin datos las vistas están vacías")

	ctl.ReplaceData(
		[]*entity.Product{producto("1", "Yogur", "Lácteos", 10, 2.5)},
		nil,
	)
	views = ctl.Views(nowRef)
	require.Len(t, views.InventoryByType, 1, "el nuevo fetch se refleja de inmediato")
	assert.Equal(t, 10, views.InventoryByType[0].TotalStock)
}

func TestController_RecomputaAlCambiarFiltro(t *testing.T) {
	ctl := NewController()
	ctl.ReplaceData(
		[]*entity.Product{
			producto("1", "Yogur", "Lácteos", 10, 2.5),
			producto("2", "Mango", "Frutas", 4, 1.2),
		},
		nil,
	)

	ctl.Dispatch(Action{Field: FieldProductType, Value: "Frutas"})
	views := ctl.Views(nowRef)
	require.Len(t, views.InventoryByType, 1)
	assert.Equal(t, "Frutas", views.InventoryByType[0].Type)

	ctl.ClearFilters()
	views = ctl.Views(nowRef)
	assert.Len(t, views.InventoryByType, 2, "clearFilters restaura el estado sin filtrar")
	assert.Equal(t, DefaultCriteria(), ctl.Criteria())
}

func TestController_VentaRegistradaTrasRefetch(t *testing.T) {
	ctl := NewController()
	p := producto("1", "Yogur", "Lácteos", 10, 2.0)
	ctl.ReplaceData([]*entity.Product{p}, nil)

	assert.True(t, ctl.Views(nowRef).KPIs.TotalSalesValue.IsZero())

	// Venta posteada mientras tanto: el caller re-obtiene y reemplaza todo.
	ctl.ReplaceData([]*entity.Product{p}, []*entity.Sale{
		venta("s1", "1", 3, nowRef, entity.SaleTypeSale),
	})
	assert.True(t, ctl.Views(nowRef).KPIs.TotalSalesValue.Equal(decimal.NewFromInt(6)))
}

// Escrituras concurrentes de filtros no deben corromper el snapshot: cada
// vista se computa con un estado de criterios consistente.
func TestController_EscrituraConcurrenteSerializada(t *testing.T) {
	ctl := NewController()
	ctl.ReplaceData(
		[]*entity.Product{producto("1", "Yogur", "Lácteos", 10, 2.5)},
		nil,
	)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				ctl.Dispatch(Action{Field: FieldProductType, Value: "Frutas"})
			} else {
				ctl.ClearFilters()
			}
			_ = ctl.Views(nowRef)
		}(i)
	}
	wg.Wait()

	c := ctl.Criteria()
	valid := c.ProductType == "Frutas" || c.ProductType == FilterAll
	assert.True(t, valid, "el estado final debe ser uno de los dos escritos, nunca mezcla")
}
