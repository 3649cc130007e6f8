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

// SaleTxRunner ejecuta fn dentro de una transacción: el descuento de stock y
// el alta de la venta se confirman o revierten juntos.
type SaleTxRunner interface {
	Run(ctx context.Context, fn func(sales repository.SaleRepository, products repository.ProductRepository) error) error
}

// SaleUseCase registra ventas y bajas descontando stock de forma atómica.
type SaleUseCase struct {
	repo repository.SaleRepository
	tx   SaleTxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, tx SaleTxRunner) *SaleUseCase {
	return &SaleUseCase{repo: repo, tx: tx}
}

// Create registra una venta o baja. Falla con ErrInsufficientStock si la
// cantidad supera el stock actual del producto.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	saleType := entity.SaleType(in.Type)
	if !saleType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != "" {
		parsed, err := parseDate(in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Date:      date,
		Type:      saleType,
		CreatedAt: time.Now(),
	}
	err := uc.tx.Run(ctx, func(sales repository.SaleRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock < in.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := products.UpdateStock(ctx, product.ID, product.Stock-in.Quantity); err != nil {
			return err
		}
		return sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID. (nil, nil) si no existe.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista ventas con paginación, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina el registro de una venta. No repone stock: una corrección
// de inventario se registra como movimiento aparte.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Date:      s.Date,
		Type:      string(s.Type),
		CreatedAt: s.CreatedAt,
	}
}
