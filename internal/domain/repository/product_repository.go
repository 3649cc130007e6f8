package repository

import (
	"context"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// ListAll devuelve la colección completa: el dashboard re-deriva toda la
// analítica en memoria, sin delegar agregación a la base de datos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// UpdateStock fija el stock absoluto (usado por el registro de ventas).
	UpdateStock(ctx context.Context, id string, stock int) error
}
