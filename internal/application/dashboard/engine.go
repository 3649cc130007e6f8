package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

const (
	// recentSalesLimit tope del widget de ventas recientes.
	recentSalesLimit = 5
	// expiryWindowDays ventana de "próximo a vencer": 0..7 días restantes.
	expiryWindowDays = 7
	// typeFallback etiqueta para productos sin categoría.
	typeFallback = "Sin categoría"
)

var hundred = decimal.NewFromInt(100)

// ComputeViews recalcula las seis vistas derivadas desde el conjunto
// completo de registros. Pasada pura y determinista: mismo (products,
// sales, criteria, now) produce siempre el mismo resultado. now se inyecta
// para que días-a-vencer y ventanas de crecimiento sean testeables.
func ComputeViews(
	products []*entity.Product,
	sales []*entity.Sale,
	c Criteria,
	now time.Time,
) *dto.DashboardViewsDTO {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if MatchesProduct(p, c) {
			filtered = append(filtered, p)
		}
	}

	lowStock := lowStockList(filtered)
	expiring := expiringSoonList(filtered, now)

	return &dto.DashboardViewsDTO{
		SalesTrend:      salesTrend(sales, byID, c, now),
		InventoryByType: inventoryByType(filtered),
		RecentSales:     recentSales(sales, byID, c),
		LowStock:        lowStock,
		ExpiringSoon:    expiring,
		KPIs: dto.DashboardKPIsDTO{
			TotalSalesValue: totalSalesValue(sales, byID, c, nil),
			GrowthPct:       growthPct(sales, byID, c, now),
			ExpiredCount:    expiredCount(filtered, now),
			NearExpiryCount: len(expiring),
			LowStockCount:   len(lowStock),
		},
	}
}

// salesTrend suma cantidades por bucket sobre las ventas que pasan los
// filtros. La serie es paralela a los buckets: completa y sin huecos
// aunque no haya ventas.
func salesTrend(
	sales []*entity.Sale,
	byID map[string]*entity.Product,
	c Criteria,
	now time.Time,
) []dto.TrendPointDTO {
	buckets := BuildBuckets(c.DateRange, c.SelectedYear, now)
	points := make([]dto.TrendPointDTO, len(buckets))
	for i, b := range buckets {
		points[i] = dto.TrendPointDTO{Label: b.Label}
	}
	for _, s := range sales {
		if !MatchesSale(s, byID[s.ProductID], c) {
			continue
		}
		for i, b := range buckets {
			if b.Contains(s.Date) {
				points[i].TotalQuantity += s.Quantity
				break
			}
		}
	}
	return points
}

// inventoryByType agrupa el stock de los productos filtrados por
// categoría. Ordenado por nombre de categoría para que la salida sea
// determinista.
func inventoryByType(products []*entity.Product) []dto.TypeStockDTO {
	totals := make(map[string]int)
	for _, p := range products {
		t := p.Type
		if t == "" {
			t = typeFallback
		}
		totals[t] += p.Stock
	}
	out := make([]dto.TypeStockDTO, 0, len(totals))
	for t, stock := range totals {
		out = append(out, dto.TypeStockDTO{Type: t, TotalStock: stock})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// recentSales últimas 5 ventas (solo type=sale) que pasan los filtros,
// más nueva primero, unidas a nombre y precio del producto.
func recentSales(
	sales []*entity.Sale,
	byID map[string]*entity.Product,
	c Criteria,
) []dto.RecentSaleDTO {
	matched := make([]*entity.Sale, 0, len(sales))
	for _, s := range sales {
		if s.Type != entity.SaleTypeSale {
			continue
		}
		if !MatchesSale(s, byID[s.ProductID], c) {
			continue
		}
		matched = append(matched, s)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	if len(matched) > recentSalesLimit {
		matched = matched[:recentSalesLimit]
	}

	out := make([]dto.RecentSaleDTO, 0, len(matched))
	for _, s := range matched {
		name := ""
		price := decimal.Zero
		if p := byID[s.ProductID]; p != nil {
			name = p.Name
			price = p.Price
		}
		out = append(out, dto.RecentSaleDTO{
			SaleID:      s.ID,
			ProductID:   s.ProductID,
			ProductName: name,
			Quantity:    s.Quantity,
			UnitPrice:   price,
			Total:       price.Mul(decimal.NewFromInt(int64(s.Quantity))),
			Date:        s.Date,
		})
	}
	return out
}

// lowStockList productos con stock bajo su umbral mínimo, ascendente por
// stock. Sin MinStock el umbral es 0: solo stock negativo dispararía la
// alerta (comportamiento heredado, ver DESIGN.md).
func lowStockList(products []*entity.Product) []dto.LowStockItemDTO {
	out := make([]dto.LowStockItemDTO, 0)
	for _, p := range products {
		if p.Stock < p.MinStockOrZero() {
			out = append(out, dto.LowStockItemDTO{
				ProductID: p.ID,
				Name:      p.Name,
				Stock:     p.Stock,
				MinStock:  p.MinStockOrZero(),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out
}

// expiringSoonList productos con 0–7 días hasta el vencimiento,
// ascendente por días restantes.
func expiringSoonList(products []*entity.Product, now time.Time) []dto.ExpiringItemDTO {
	out := make([]dto.ExpiringItemDTO, 0)
	for _, p := range products {
		if p.ExpirationDate.IsZero() {
			continue
		}
		d := daysUntil(p.ExpirationDate, now)
		if d >= 0 && d <= expiryWindowDays {
			out = append(out, dto.ExpiringItemDTO{
				ProductID:      p.ID,
				Name:           p.Name,
				ExpirationDate: p.ExpirationDate,
				DaysLeft:       d,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysLeft < out[j].DaysLeft })
	return out
}

// expiredCount productos ya vencidos (días restantes negativos).
func expiredCount(products []*entity.Product, now time.Time) int {
	n := 0
	for _, p := range products {
		if !p.ExpirationDate.IsZero() && daysUntil(p.ExpirationDate, now) < 0 {
			n++
		}
	}
	return n
}

// saleWindow restringe totalSalesValue a un intervalo de días [from, to]
// (to exclusivo si openEnd).
type saleWindow struct {
	from, to time.Time
	openEnd  bool
}

func (w *saleWindow) contains(t time.Time) bool {
	day := dayOf(t)
	if day.Before(w.from) {
		return false
	}
	if w.openEnd {
		return day.Before(w.to)
	}
	return !day.After(w.to)
}

// totalSalesValue suma quantity × precio sobre las ventas type=sale que
// pasan los filtros, opcionalmente restringidas a una ventana de días.
func totalSalesValue(
	sales []*entity.Sale,
	byID map[string]*entity.Product,
	c Criteria,
	window *saleWindow,
) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		if s.Type != entity.SaleTypeSale {
			continue
		}
		p := byID[s.ProductID]
		if !MatchesSale(s, p, c) {
			continue
		}
		if window != nil && !window.contains(s.Date) {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(s.Quantity))))
	}
	return total
}

// growthPct crecimiento período-sobre-período del valor vendido. P es la
// longitud del rango en días ("year" cuenta 365). Período actual
// [hoy−P, hoy]; anterior [hoy−2P, hoy−P). Sin ventas en el período
// anterior el resultado es el centinela 100 (comportamiento heredado del
// sistema original; conflato "crecimiento infinito" con "100%", ver
// DESIGN.md). Redondeado a 1 decimal.
func growthPct(
	sales []*entity.Sale,
	byID map[string]*entity.Product,
	c Criteria,
	now time.Time,
) decimal.Decimal {
	p := rangeDays(c.DateRange)
	today := dayOf(now)

	current := totalSalesValue(sales, byID, c, &saleWindow{
		from: today.AddDate(0, 0, -p),
		to:   today,
	})
	previous := totalSalesValue(sales, byID, c, &saleWindow{
		from:    today.AddDate(0, 0, -2*p),
		to:      today.AddDate(0, 0, -p),
		openEnd: true,
	})

	if previous.IsZero() {
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(1)
}

// daysUntil días calendario enteros entre la fecha de vencimiento y
// "ahora": 0 = vence hoy, negativo = ya vencido.
func daysUntil(expiration, now time.Time) int {
	return int(dayOf(expiration).Sub(dayOf(now)).Hours() / 24)
}
