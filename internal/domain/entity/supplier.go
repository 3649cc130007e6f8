package entity

import "time"

// Supplier proveedor de productos (relación uno-a-muchos con Product).
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
