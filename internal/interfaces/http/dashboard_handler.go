package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dashboard"
	"github.com/jhoicas/Despensa-api/internal/application/dto"
)

// ReportGenerator puerto para el reporte PDF del dashboard.
type ReportGenerator interface {
	Generate(ctx context.Context, views *dto.DashboardViewsDTO, now time.Time) ([]byte, error)
}

// DashboardHandler maneja el dashboard y su reporte (protegido).
type DashboardHandler struct {
	uc     *dashboard.UseCase
	report ReportGenerator
}

// NewDashboardHandler construye el handler. report puede ser nil (sin PDF).
func NewDashboardHandler(uc *dashboard.UseCase, report ReportGenerator) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// queryFields mapea cada query param a su dimensión de filtro. Un param
// ausente no genera acción: la dimensión queda en su valor por defecto.
var queryFields = []dashboard.Field{
	dashboard.FieldDateRange,
	dashboard.FieldSelectedYear,
	dashboard.FieldProductName,
	dashboard.FieldProductType,
	dashboard.FieldSupplierID,
	dashboard.FieldMinPrice,
	dashboard.FieldMaxPrice,
	dashboard.FieldMinStock,
	dashboard.FieldMaxStock,
	dashboard.FieldEntryDateFrom,
	dashboard.FieldEntryDateTo,
	dashboard.FieldExpirationFrom,
	dashboard.FieldExpirationTo,
	dashboard.FieldQRBarcode,
	dashboard.FieldSaleQuantityMin,
	dashboard.FieldSaleQuantityMax,
	dashboard.FieldSaleDateFrom,
	dashboard.FieldSaleDateTo,
	dashboard.FieldSaleType,
}

func parseActions(c *fiber.Ctx) []dashboard.Action {
	var actions []dashboard.Action
	for _, f := range queryFields {
		if v := c.Query(string(f)); v != "" {
			actions = append(actions, dashboard.Action{Field: f, Value: v})
		}
	}
	return actions
}

// GetViews godoc
// @Summary      Vistas del dashboard
// @Description  Aplica los filtros de query sobre los criterios por defecto y devuelve las seis vistas derivadas.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        dateRange    query  string  false  "7d | 30d | 90d | 365d | year"  default(7d)
// @Param        selectedYear query  int     false  "Año para dateRange=year"
// @Param        productName  query  string  false  "Substring, insensible a acentos"
// @Param        productType  query  string  false  "Categoría exacta; all = sin filtrar"
// @Param        supplier     query  string  false  "ID de proveedor; all = sin filtrar"
// @Success      200  {object}  dto.DashboardViewsDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetViews(c *fiber.Ctx) error {
	views, err := h.uc.GetViews(c.UserContext(), parseActions(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(views)
}

// GetReport godoc
// @Summary      Reporte PDF del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/dashboard/report.pdf [get]
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	if h.report == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "reporte PDF no configurado"})
	}
	now := time.Now()
	views, err := h.uc.GetViews(c.UserContext(), parseActions(c), now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	payload, err := h.report.Generate(c.UserContext(), views, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-inventario.pdf"`)
	return c.Send(payload)
}
