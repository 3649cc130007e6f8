package dto

import "time"

// CreateSupplierRequest cuerpo de POST /api/suppliers.
type CreateSupplierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdateSupplierRequest cuerpo de PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// SupplierResponse representación pública de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
