package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
)

// NotificationHandler maneja las alertas de inventario (protegido).
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        unread  query  bool  false  "Solo no leídas"
// @Param        limit   query  int   false  "Límite"   default(20)
// @Param        offset  query  int   false  "Offset"   default(0)
// @Success      200     {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	onlyUnread := c.QueryBool("unread", false)
	out, err := h.uc.List(c.UserContext(), onlyUnread, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      Regenerar alertas de stock bajo y vencimiento
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GenerateAlertsResponse
// @Router       /api/notifications/generate [post]
func (h *NotificationHandler) Generate(c *fiber.Ctx) error {
	out, err := h.uc.GenerateAlerts(c.UserContext(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkRead marca una alerta como leída.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.MarkRead(c.UserContext(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina una alerta.
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
