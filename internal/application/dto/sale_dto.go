package dto

import "time"

// CreateSaleRequest cuerpo de POST /api/sales. type: "sale" | "disposal".
type CreateSaleRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Date      string `json:"date"` // YYYY-MM-DD; vacío = hoy
	Type      string `json:"type"`
}

// SaleResponse representación pública de una venta o baja.
type SaleResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleListResponse listado paginado.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
