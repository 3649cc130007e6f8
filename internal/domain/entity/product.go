package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto perecedero del inventario.
// Stock es el stock actual de la tienda; MinStock y MaxStock son umbrales
// opcionales (nil = sin umbral). El invariante blando stock ≤ maxStock se
// valida en la capa de mutación, no aquí.
type Product struct {
	ID             string
	Name           string
	EntryDate      time.Time
	ExpirationDate time.Time // zero value = sin fecha de vencimiento
	Price          decimal.Decimal
	Stock          int
	MinStock       *int
	MaxStock       *int
	Type           string // categoría: "Lácteos", "Frutas", "Panadería", ...
	QRCode         string
	Barcode        string
	SupplierID     string // vacío = sin proveedor asignado
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MinStockOrZero devuelve el umbral mínimo, o 0 si no está definido.
func (p *Product) MinStockOrZero() int {
	if p.MinStock == nil {
		return 0
	}
	return *p.MinStock
}
