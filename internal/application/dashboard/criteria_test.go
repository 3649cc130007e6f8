package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reducer de filtros: cada acción modifica exactamente una dimensión.
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_ModificaSoloUnCampo(t *testing.T) {
	c := DefaultCriteria()
	next := Apply(c, Action{Field: FieldMinPrice, Value: "10.50"})

	assert.Equal(t, "10.50", next.MinPrice, "minPrice debe actualizarse")

	// El resto del estado queda intacto
	next.MinPrice = c.MinPrice
	assert.Equal(t, c, next, "ninguna otra dimensión debe cambiar")
}

func TestApply_NoMutaElEstadoOriginal(t *testing.T) {
	c := DefaultCriteria()
	_ = Apply(c, Action{Field: FieldProductName, Value: "yogur"})
	assert.Empty(t, c.ProductName, "el estado original no debe mutar")
}

func TestApply_CampoDesconocidoEsNoOp(t *testing.T) {
	c := DefaultCriteria()
	next := Apply(c, Action{Field: "campoInexistente", Value: "x"})
	assert.Equal(t, c, next, "un campo desconocido no debe cambiar nada")
}

func TestApply_SelectedYearMalformadoConservaAnterior(t *testing.T) {
	c := Apply(DefaultCriteria(), Action{Field: FieldSelectedYear, Value: "2024"})
	c = Apply(c, Action{Field: FieldSelectedYear, Value: "no-es-año"})
	assert.Equal(t, 2024, c.SelectedYear, "un año malformado conserva el valor anterior")
}

func TestApply_MinMayorQueMaxEsEstadoLegal(t *testing.T) {
	c := Apply(DefaultCriteria(), Action{Field: FieldMinPrice, Value: "100"})
	c = Apply(c, Action{Field: FieldMaxPrice, Value: "10"})
	assert.Equal(t, "100", c.MinPrice)
	assert.Equal(t, "10", c.MaxPrice, "min > max no se rechaza en el reducer")
}

func TestDefaultCriteria_ValoresDocumentados(t *testing.T) {
	c := DefaultCriteria()
	assert.Equal(t, Range7d, c.DateRange)
	assert.Equal(t, FilterAll, c.ProductType)
	assert.Equal(t, FilterAll, c.SupplierID)
	assert.Equal(t, FilterAll, c.SaleType)
	assert.Empty(t, c.MinPrice, "los límites numéricos inician vacíos, no en 0")
	assert.Zero(t, c.SelectedYear)
}

// ClearFilters equivale a volver a DefaultCriteria (CLEAR_ALL).
func TestClearAll_RestauraTodosLosDefaults(t *testing.T) {
	c := DefaultCriteria()
	for _, a := range []Action{
		{FieldDateRange, RangeYear},
		{FieldSelectedYear, "2023"},
		{FieldProductName, "leche"},
		{FieldProductType, "Lácteos"},
		{FieldMinPrice, "1"},
		{FieldSaleType, "disposal"},
	} {
		c = Apply(c, a)
	}
	assert.NotEqual(t, DefaultCriteria(), c)
	assert.Equal(t, DefaultCriteria(), DefaultCriteria(), "reset total")
}

// ──────────────────────────────────────────────────────────────────────────────
// CacheKey
// ──────────────────────────────────────────────────────────────────────────────

func TestCacheKey_DefaultYEstabilidad(t *testing.T) {
	assert.Equal(t, "default", DefaultCriteria().CacheKey(),
		"criterios por defecto usan la clave corta")

	c := Apply(DefaultCriteria(), Action{Field: FieldProductType, Value: "Frutas"})
	assert.Equal(t, c.CacheKey(), c.CacheKey(), "la clave debe ser estable")
	assert.NotEqual(t, "default", c.CacheKey())

	otro := Apply(DefaultCriteria(), Action{Field: FieldProductType, Value: "Panadería"})
	assert.NotEqual(t, c.CacheKey(), otro.CacheKey(),
		"criterios distintos deben producir claves distintas")
}
