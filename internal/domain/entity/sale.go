package entity

import "time"

// SaleType distingue una venta de una baja de inventario (merma, vencimiento).
type SaleType string

const (
	SaleTypeSale     SaleType = "sale"
	SaleTypeDisposal SaleType = "disposal"
)

// Valid indica si el tipo es uno de los valores conocidos.
func (t SaleType) Valid() bool {
	return t == SaleTypeSale || t == SaleTypeDisposal
}

// Sale representa una salida de inventario: venta o baja.
// Referencia al producto por ID; una venta cuyo producto ya no existe se
// excluye de toda agregación (orphan-safe).
type Sale struct {
	ID        string
	ProductID string
	Quantity  int // siempre > 0
	Date      time.Time
	Type      SaleType
	CreatedAt time.Time
}
