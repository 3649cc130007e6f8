package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ProductUseCase casos de uso CRUD para productos perecederos.
// El invariante blando stock ≤ maxStock se valida aquí, en la frontera de
// mutación; el dashboard trata cada producto como snapshot inmutable.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	entryDate, err := parseDate(in.EntryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	expiration, err := parseOptionalDate(in.ExpirationDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxStock != nil && in.Stock > *in.MaxStock {
		return nil, domain.ErrStockAboveMax
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		EntryDate:      entryDate,
		ExpirationDate: expiration,
		Price:          in.Price,
		Stock:          in.Stock,
		MinStock:       in.MinStock,
		MaxStock:       in.MaxStock,
		Type:           in.Type,
		QRCode:         in.QRCode,
		Barcode:        in.Barcode,
		SupplierID:     in.SupplierID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto; campos nil no se tocan.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.EntryDate != nil {
		d, err := parseDate(*in.EntryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.EntryDate = d
	}
	if in.ExpirationDate != nil {
		d, err := parseOptionalDate(*in.ExpirationDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.ExpirationDate = d
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.MinStock != nil {
		product.MinStock = in.MinStock
	}
	if in.MaxStock != nil {
		product.MaxStock = in.MaxStock
	}
	if in.Type != nil {
		product.Type = *in.Type
	}
	if in.QRCode != nil {
		product.QRCode = *in.QRCode
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if product.MaxStock != nil && product.Stock > *product.MaxStock {
		return nil, domain.ErrStockAboveMax
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

// parseOptionalDate acepta vacío como "sin fecha" (zero value).
func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return parseDate(s)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	expiration := ""
	if !p.ExpirationDate.IsZero() {
		expiration = p.ExpirationDate.Format(dateLayout)
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		EntryDate:      p.EntryDate.Format(dateLayout),
		ExpirationDate: expiration,
		Price:          p.Price,
		Stock:          p.Stock,
		MinStock:       p.MinStock,
		MaxStock:       p.MaxStock,
		Type:           p.Type,
		QRCode:         p.QRCode,
		Barcode:        p.Barcode,
		SupplierID:     p.SupplierID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
