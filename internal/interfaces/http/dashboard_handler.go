package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/analytics"
)

// DashboardHandler expõe o resumo do dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devolve os agregados derivados da coleção de vendas.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
