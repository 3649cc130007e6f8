// Package pdf genera el reporte imprimible del dashboard de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Fecha del reporte           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ventas | Crecimiento | Vencidos | Por vencer | Bajo  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Stock bajo (producto, stock, mínimo)                │
//	│  TABLA: Por vencer (producto, fecha, días restantes)        │
//	│  TABLA: Ventas recientes (producto, cant, total, fecha)     │
//	│  TABLA: Inventario por categoría                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 62}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// DashboardReportGenerator produce el PDF del dashboard usando Maroto v2.
type DashboardReportGenerator struct {
	businessName string
}

// NewDashboardReportGenerator construye el generador.
func NewDashboardReportGenerator(businessName string) *DashboardReportGenerator {
	return &DashboardReportGenerator{businessName: businessName}
}

// Generate genera el reporte PDF de las vistas y devuelve sus bytes.
func (g *DashboardReportGenerator) Generate(
	_ context.Context,
	views *dto.DashboardViewsDTO,
	now time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, now))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpisRow(views.KPIs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("STOCK BAJO"))
	if len(views.LowStock) == 0 {
		m.AddRows(emptyRow("Sin productos bajo el mínimo"))
	}
	for _, item := range views.LowStock {
		m.AddRows(lowStockRow(item))
	}

	m.AddRows(sectionTitle("POR VENCER (7 DÍAS)"))
	if len(views.ExpiringSoon) == 0 {
		m.AddRows(emptyRow("Sin productos próximos a vencer"))
	}
	for _, item := range views.ExpiringSoon {
		m.AddRows(expiringRow(item))
	}

	m.AddRows(sectionTitle("VENTAS RECIENTES"))
	if len(views.RecentSales) == 0 {
		m.AddRows(emptyRow("Sin ventas registradas"))
	}
	for _, item := range views.RecentSales {
		m.AddRows(recentSaleRow(item))
	}

	m.AddRows(sectionTitle("INVENTARIO POR CATEGORÍA"))
	for _, item := range views.InventoryByType {
		m.AddRows(typeStockRow(item))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y fecha del reporte (der).
func headerRow(businessName string, now time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+now.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// kpisRow: los cinco escalares resumen en una sola banda.
func kpisRow(kpis dto.DashboardKPIsDTO) core.Row {
	kpi := func(label, value string, c *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: c, Top: 5,
			}),
		)
	}
	return row.New(14).Add(
		col.New(1),
		kpi("Ventas", "$"+kpis.TotalSalesValue.StringFixed(2), colorPrimary),
		kpi("Crecimiento", kpis.GrowthPct.StringFixed(1)+"%", colorPrimary),
		kpi("Vencidos", fmt.Sprintf("%d", kpis.ExpiredCount), colorAlert),
		kpi("Por vencer", fmt.Sprintf("%d", kpis.NearExpiryCount), colorAlert),
		kpi("Stock bajo", fmt.Sprintf("%d", kpis.LowStockCount), colorAlert),
		col.New(1),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3,
		}),
	))
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
	))
}

func lowStockRow(item dto.LowStockItemDTO) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(item.Name, props.Text{Size: 8, Top: 1, Left: 2})),
		col.New(3).Add(text.New(
			fmt.Sprintf("Stock: %d", item.Stock),
			props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorAlert},
		)),
		col.New(3).Add(text.New(
			fmt.Sprintf("Mínimo: %d", item.MinStock),
			props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorGray},
		)),
	)
}

func expiringRow(item dto.ExpiringItemDTO) core.Row {
	days := fmt.Sprintf("en %d días", item.DaysLeft)
	if item.DaysLeft == 0 {
		days = "hoy"
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(item.Name, props.Text{Size: 8, Top: 1, Left: 2})),
		col.New(3).Add(text.New(
			item.ExpirationDate.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorGray},
		)),
		col.New(3).Add(text.New(
			"Vence "+days,
			props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorAlert},
		)),
	)
}

func recentSaleRow(item dto.RecentSaleDTO) core.Row {
	return row.New(6).Add(
		col.New(5).Add(text.New(item.ProductName, props.Text{Size: 8, Top: 1, Left: 2})),
		col.New(2).Add(text.New(
			fmt.Sprintf("x%d", item.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			"$"+item.Total.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1},
		)),
		col.New(3).Add(text.New(
			item.Date.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorGray},
		)),
	)
}

func typeStockRow(item dto.TypeStockDTO) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(item.Type, props.Text{Size: 8, Top: 1, Left: 2})),
		col.New(4).Add(text.New(
			fmt.Sprintf("%d unidades", item.TotalStock),
			props.Text{Size: 8, Align: align.Right, Top: 1},
		)),
	)
}
