package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas y bajas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Sale, error)
	ListAll(ctx context.Context) ([]*entity.Sale, error)
}
