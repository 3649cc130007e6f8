package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta o baja.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, date, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ProductID, sale.Quantity, sale.Date, string(sale.Type), sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT id, product_id, quantity, date, type, created_at FROM sales WHERE id = $1`
	var s entity.Sale
	var saleType string
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.ProductID, &s.Quantity, &s.Date, &saleType, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.Type = entity.SaleType(saleType)
	return &s, nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// List lista ventas con paginación, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_id, quantity, date, type, created_at
		FROM sales ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

// ListAll devuelve todas las ventas; lo consume el motor del dashboard.
func (r *SaleRepo) ListAll(ctx context.Context) ([]*entity.Sale, error) {
	query := `SELECT id, product_id, quantity, date, type, created_at FROM sales ORDER BY date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var saleType string
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.Date, &saleType, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.Type = entity.SaleType(saleType)
		list = append(list, &s)
	}
	return list, rows.Err()
}
