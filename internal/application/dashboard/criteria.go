// Package dashboard implementa el motor de agregación y filtrado del
// dashboard: evaluación de criterios por registro, bucketing temporal,
// vistas derivadas (tendencia de ventas, inventario por categoría, stock
// bajo, próximos a vencer, KPIs) y el controlador de recomputación.
//
// Todo el paquete es computación pura en memoria: sin I/O, sin reloj
// global. El "ahora" se inyecta en cada operación que lo necesita.
package dashboard

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
)

// Valores especiales de los criterios.
const (
	// FilterAll valor "sin filtrar" de las dimensiones enumeradas
	// (categoría, proveedor, tipo de venta).
	FilterAll = "all"

	// Rangos de fecha soportados por la tendencia de ventas.
	Range7d   = "7d"
	Range30d  = "30d"
	Range90d  = "90d"
	Range365d = "365d"
	RangeYear = "year"
)

// Criteria es el conjunto de dimensiones de filtrado del dashboard.
// Cada dimensión es independiente; la combinación es un AND lógico.
//
// Los límites numéricos y de fecha se guardan como string: el valor vacío
// significa "sin límite" y se distingue de "0". Un valor malformado se
// trata como vacío al evaluar, nunca como error.
type Criteria struct {
	DateRange    string // 7d | 30d | 90d | 365d | year
	SelectedYear int    // usado cuando DateRange == year; 0 = año de "ahora"

	// Dimensiones de producto
	ProductName    string // substring, insensible a mayúsculas y acentos
	ProductType    string // exacto; "all" = sin filtrar
	SupplierID     string // exacto; "all" = sin filtrar
	MinPrice       string
	MaxPrice       string
	MinStock       string
	MaxStock       string
	EntryDateFrom  string // YYYY-MM-DD, comparación por día, inclusivo
	EntryDateTo    string
	ExpirationFrom string
	ExpirationTo   string
	QRBarcode      string // substring sobre qrCode O barcode

	// Dimensiones de venta
	SaleQuantityMin string
	SaleQuantityMax string
	SaleDateFrom    string
	SaleDateTo      string
	SaleType        string // sale | disposal | all
}

// DefaultCriteria devuelve el estado sin filtrar documentado: "all" para
// enumeraciones, vacío para texto y límites, rango de 7 días.
func DefaultCriteria() Criteria {
	return Criteria{
		DateRange:   Range7d,
		ProductType: FilterAll,
		SupplierID:  FilterAll,
		SaleType:    FilterAll,
	}
}

// Field identifica una dimensión de Criteria para el reducer.
type Field string

const (
	FieldDateRange       Field = "dateRange"
	FieldSelectedYear    Field = "selectedYear"
	FieldProductName     Field = "productName"
	FieldProductType     Field = "productType"
	FieldSupplierID      Field = "supplier"
	FieldMinPrice        Field = "minPrice"
	FieldMaxPrice        Field = "maxPrice"
	FieldMinStock        Field = "minStock"
	FieldMaxStock        Field = "maxStock"
	FieldEntryDateFrom   Field = "entryDateFrom"
	FieldEntryDateTo     Field = "entryDateTo"
	FieldExpirationFrom  Field = "expirationFrom"
	FieldExpirationTo    Field = "expirationTo"
	FieldQRBarcode       Field = "qrBarcode"
	FieldSaleQuantityMin Field = "saleQuantityMin"
	FieldSaleQuantityMax Field = "saleQuantityMax"
	FieldSaleDateFrom    Field = "saleDateFrom"
	FieldSaleDateTo      Field = "saleDateTo"
	FieldSaleType        Field = "saleType"
)

// Action actualiza exactamente una dimensión del estado de filtros.
type Action struct {
	Field Field
	Value string
}

// Apply es el reducer de filtros: devuelve el estado resultante de aplicar
// la acción. Modifica una sola dimensión, sin validación cruzada: fijar
// minPrice > maxPrice es estado legal que simplemente produce vistas
// vacías aguas abajo.
func Apply(c Criteria, a Action) Criteria {
	switch a.Field {
	case FieldDateRange:
		c.DateRange = a.Value
	case FieldSelectedYear:
		// Año malformado: se conserva el valor anterior.
		if y, err := strconv.Atoi(strings.TrimSpace(a.Value)); err == nil {
			c.SelectedYear = y
		}
	case FieldProductName:
		c.ProductName = a.Value
	case FieldProductType:
		c.ProductType = a.Value
	case FieldSupplierID:
		c.SupplierID = a.Value
	case FieldMinPrice:
		c.MinPrice = a.Value
	case FieldMaxPrice:
		c.MaxPrice = a.Value
	case FieldMinStock:
		c.MinStock = a.Value
	case FieldMaxStock:
		c.MaxStock = a.Value
	case FieldEntryDateFrom:
		c.EntryDateFrom = a.Value
	case FieldEntryDateTo:
		c.EntryDateTo = a.Value
	case FieldExpirationFrom:
		c.ExpirationFrom = a.Value
	case FieldExpirationTo:
		c.ExpirationTo = a.Value
	case FieldQRBarcode:
		c.QRBarcode = a.Value
	case FieldSaleQuantityMin:
		c.SaleQuantityMin = a.Value
	case FieldSaleQuantityMax:
		c.SaleQuantityMax = a.Value
	case FieldSaleDateFrom:
		c.SaleDateFrom = a.Value
	case FieldSaleDateTo:
		c.SaleDateTo = a.Value
	case FieldSaleType:
		c.SaleType = a.Value
	}
	// Field desconocido: no-op.
	return c
}

// CacheKey devuelve una clave estable para cachear vistas calculadas con
// estos criterios. Criterios por defecto producen la clave "default".
func (c Criteria) CacheKey() string {
	def := DefaultCriteria()
	if c == def {
		return "default"
	}
	parts := []string{
		"range=" + c.DateRange,
		"year=" + strconv.Itoa(c.SelectedYear),
		"name=" + c.ProductName,
		"type=" + c.ProductType,
		"supplier=" + c.SupplierID,
		"price=" + c.MinPrice + ".." + c.MaxPrice,
		"stock=" + c.MinStock + ".." + c.MaxStock,
		"entry=" + c.EntryDateFrom + ".." + c.EntryDateTo,
		"exp=" + c.ExpirationFrom + ".." + c.ExpirationTo,
		"qr=" + c.QRBarcode,
		"sqty=" + c.SaleQuantityMin + ".." + c.SaleQuantityMax,
		"sdate=" + c.SaleDateFrom + ".." + c.SaleDateTo,
		"stype=" + c.SaleType,
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
