package entity

import "time"

// NotificationType clasifica las alertas de inventario.
type NotificationType string

const (
	NotificationLowStock NotificationType = "low_stock"
	NotificationExpiring NotificationType = "expiring"
	NotificationExpired  NotificationType = "expired"
)

// Notification alerta persistida de stock bajo o vencimiento.
// Se generan a partir de las listas derivadas del dashboard.
type Notification struct {
	ID        string
	Type      NotificationType
	ProductID string
	Message   string
	Read      bool
	CreatedAt time.Time
}
