package dto

import "time"

// NotificationResponse alerta de inventario.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // low_stock | expiring | expired
	ProductID string    `json:"product_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateAlertsResponse resultado de regenerar alertas.
type GenerateAlertsResponse struct {
	Created int `json:"created"`
}
