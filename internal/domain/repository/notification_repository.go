package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// NotificationRepository puerto de persistencia para alertas de inventario.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// DeleteByProduct limpia alertas viejas antes de regenerarlas.
	DeleteByProduct(ctx context.Context, productID string, t entity.NotificationType) error
}
