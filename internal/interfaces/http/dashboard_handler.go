package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sran4/invoice-manager/internal/application/analytics"
	"github.com/sran4/invoice-manager/internal/application/dto"
)

// DashboardHandler expone el resumen de facturación (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve conteos e ingresos por estado y por mes.
// GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	summary, err := h.uc.GetSummary(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(summary)
}
