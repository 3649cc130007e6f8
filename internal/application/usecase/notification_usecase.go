package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Despensa-api/internal/application/dashboard"
	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

// NotificationUseCase gestiona las alertas de inventario. Las alertas se
// derivan de las mismas listas que alimentan el dashboard, así el panel y
// las notificaciones nunca cuentan historias distintas.
type NotificationUseCase struct {
	repo     repository.NotificationRepository
	products repository.ProductRepository
}

func NewNotificationUseCase(repo repository.NotificationRepository, products repository.ProductRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, products: products}
}

// GenerateAlerts recalcula las alertas de stock bajo y vencimiento sobre el
// inventario completo. Las alertas previas de cada producto afectado se
// reemplazan para no acumular duplicados.
func (uc *NotificationUseCase) GenerateAlerts(ctx context.Context, now time.Time) (*dto.GenerateAlertsResponse, error) {
	products, err := uc.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: productos: %w", err)
	}
	views := dashboard.ComputeViews(products, nil, dashboard.DefaultCriteria(), now)

	created := 0
	for _, item := range views.LowStock {
		msg := fmt.Sprintf("Stock bajo: %s (%d/%d)", item.Name, item.Stock, item.MinStock)
		if err := uc.replace(ctx, entity.NotificationLowStock, item.ProductID, msg, now); err != nil {
			return nil, err
		}
		created++
	}
	for _, item := range views.ExpiringSoon {
		msg := fmt.Sprintf("Por vencer: %s vence en %d días", item.Name, item.DaysLeft)
		if item.DaysLeft == 0 {
			msg = fmt.Sprintf("Por vencer: %s vence hoy", item.Name)
		}
		if err := uc.replace(ctx, entity.NotificationExpiring, item.ProductID, msg, now); err != nil {
			return nil, err
		}
		created++
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, p := range products {
		if p.ExpirationDate.IsZero() {
			continue
		}
		exp := p.ExpirationDate
		expDay := time.Date(exp.Year(), exp.Month(), exp.Day(), 0, 0, 0, 0, exp.Location())
		if !expDay.Before(today) {
			continue
		}
		msg := fmt.Sprintf("Vencido: %s venció el %s", p.Name, p.ExpirationDate.Format("2006-01-02"))
		if err := uc.replace(ctx, entity.NotificationExpired, p.ID, msg, now); err != nil {
			return nil, err
		}
		created++
	}
	return &dto.GenerateAlertsResponse{Created: created}, nil
}

func (uc *NotificationUseCase) replace(ctx context.Context, t entity.NotificationType, productID, message string, now time.Time) error {
	if err := uc.repo.DeleteByProduct(ctx, productID, t); err != nil {
		return err
	}
	return uc.repo.Create(ctx, &entity.Notification{
		ID:        uuid.New().String(),
		Type:      t,
		ProductID: productID,
		Message:   message,
		CreatedAt: now,
	})
}

// List lista alertas, opcionalmente solo las no leídas.
func (uc *NotificationUseCase) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.List(ctx, onlyUnread, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			ProductID: n.ProductID,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return items, nil
}

// MarkRead marca una alerta como leída.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	return uc.repo.MarkRead(ctx, id)
}

// Delete elimina una alerta.
func (uc *NotificationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
