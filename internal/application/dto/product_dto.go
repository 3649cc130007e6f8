package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest cuerpo de POST /api/products.
// Las fechas llegan como YYYY-MM-DD.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	EntryDate      string          `json:"entry_date"`
	ExpirationDate string          `json:"expiration_date"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	MinStock       *int            `json:"min_stock"`
	MaxStock       *int            `json:"max_stock"`
	Type           string          `json:"type"`
	QRCode         string          `json:"qr_code"`
	Barcode        string          `json:"barcode"`
	SupplierID     string          `json:"supplier_id"`
}

// UpdateProductRequest cuerpo de PUT /api/products/:id. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	EntryDate      *string          `json:"entry_date"`
	ExpirationDate *string          `json:"expiration_date"`
	Price          *decimal.Decimal `json:"price"`
	Stock          *int             `json:"stock"`
	MinStock       *int             `json:"min_stock"`
	MaxStock       *int             `json:"max_stock"`
	Type           *string          `json:"type"`
	QRCode         *string          `json:"qr_code"`
	Barcode        *string          `json:"barcode"`
	SupplierID     *string          `json:"supplier_id"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	EntryDate      string          `json:"entry_date"`
	ExpirationDate string          `json:"expiration_date,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	MinStock       *int            `json:"min_stock,omitempty"`
	MaxStock       *int            `json:"max_stock,omitempty"`
	Type           string          `json:"type"`
	QRCode         string          `json:"qr_code,omitempty"`
	Barcode        string          `json:"barcode,omitempty"`
	SupplierID     string          `json:"supplier_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
