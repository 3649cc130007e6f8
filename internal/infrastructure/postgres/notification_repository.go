package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una alerta.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, type, product_id, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		n.ID, string(n.Type), n.ProductID, n.Message, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// List lista alertas con paginación, más recientes primero.
func (r *NotificationRepo) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, type, product_id, message, read, created_at
		FROM notifications
		WHERE ($1 = false OR read = false)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, onlyUnread, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		var notifType string
		if err := rows.Scan(&n.ID, &notifType, &n.ProductID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Type = entity.NotificationType(notifType)
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca una alerta como leída.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// Delete elimina una alerta por ID.
func (r *NotificationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// DeleteByProduct limpia las alertas de un tipo para un producto antes de regenerarlas.
func (r *NotificationRepo) DeleteByProduct(ctx context.Context, productID string, t entity.NotificationType) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM notifications WHERE product_id = $1 AND type = $2`,
		productID, string(t),
	)
	if err != nil {
		return fmt.Errorf("delete notifications by product: %w", err)
	}
	return nil
}
