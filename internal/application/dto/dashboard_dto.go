package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardViewsDTO respuesta de GET /api/dashboard: las seis vistas
// derivadas recomputadas sobre el conjunto filtrado.
type DashboardViewsDTO struct {
	SalesTrend      []TrendPointDTO      `json:"sales_trend"`
	InventoryByType []TypeStockDTO       `json:"inventory_by_type"`
	RecentSales     []RecentSaleDTO      `json:"recent_sales"`
	LowStock        []LowStockItemDTO    `json:"low_stock"`
	ExpiringSoon    []ExpiringItemDTO    `json:"expiring_soon"`
	KPIs            DashboardKPIsDTO     `json:"kpis"`
}

// TrendPointDTO un bucket de la serie de tendencia (cantidad vendida).
type TrendPointDTO struct {
	Label         string `json:"label"` // "02/01" diario, "Enero 2024" mensual
	TotalQuantity int    `json:"total_quantity"`
}

// TypeStockDTO stock total agrupado por categoría de producto.
type TypeStockDTO struct {
	Type       string `json:"type"`
	TotalStock int    `json:"total_stock"`
}

// RecentSaleDTO venta reciente unida a su producto (máximo 5, más nueva primero).
type RecentSaleDTO struct {
	SaleID      string          `json:"sale_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
}

// LowStockItemDTO producto bajo su umbral mínimo (ascendente por stock).
type LowStockItemDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"min_stock"`
}

// ExpiringItemDTO producto que vence en 0–7 días (ascendente por días restantes).
type ExpiringItemDTO struct {
	ProductID      string    `json:"product_id"`
	Name           string    `json:"name"`
	ExpirationDate time.Time `json:"expiration_date"`
	DaysLeft       int       `json:"days_left"`
}

// DashboardKPIsDTO escalares resumen del período filtrado.
type DashboardKPIsDTO struct {
	TotalSalesValue decimal.Decimal `json:"total_sales_value"` // suma qty × precio (solo type=sale)
	GrowthPct       decimal.Decimal `json:"growth_pct"`        // % período vs período anterior, 1 decimal
	ExpiredCount    int             `json:"expired_count"`
	NearExpiryCount int             `json:"near_expiry_count"`
	LowStockCount   int             `json:"low_stock_count"`
}
