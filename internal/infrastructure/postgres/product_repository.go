package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, entry_date, expiration_date, price, stock, min_stock, max_stock, type, qr_code, barcode, supplier_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Fecha de vencimiento y proveedor son opcionales.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.EntryDate, nullableTime(product.ExpirationDate),
		product.Price, product.Stock, product.MinStock, product.MaxStock,
		product.Type, product.QRCode, product.Barcode, nullableString(product.SupplierID),
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, entry_date = $3, expiration_date = $4, price = $5, stock = $6,
		    min_stock = $7, max_stock = $8, type = $9, qr_code = $10, barcode = $11,
		    supplier_id = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.EntryDate, nullableTime(product.ExpirationDate),
		product.Price, product.Stock, product.MinStock, product.MaxStock,
		product.Type, product.QRCode, product.Barcode, nullableString(product.SupplierID),
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el stock (usado por el registro de ventas dentro de la tx).
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, stock int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// List lista productos con paginación, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListAll devuelve el inventario completo; lo consume el motor del dashboard.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	var expiration *time.Time
	var supplierID *string
	err := row.Scan(
		&p.ID, &p.Name, &p.EntryDate, &expiration, &p.Price, &p.Stock,
		&p.MinStock, &p.MaxStock, &p.Type, &p.QRCode, &p.Barcode, &supplierID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if expiration != nil {
		p.ExpirationDate = *expiration
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// nullableTime mapea el zero value a NULL.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// nullableString mapea la cadena vacía a NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
