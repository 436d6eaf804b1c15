package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/stockflow-api/internal/application/analytics"
)

// BalanceHandler maneja el reporte de saldos por (producto, ubicación).
type BalanceHandler struct {
	uc *appanalytics.BalanceReportUseCase
}

// NewBalanceHandler construye el handler.
func NewBalanceHandler(uc *appanalytics.BalanceReportUseCase) *BalanceHandler {
	return &BalanceHandler{uc: uc}
}

// GetReport saldos netos distintos de cero, listos para vista tabular. GET /api/balance
func (h *BalanceHandler) GetReport(c *fiber.Ctx) error {
	out, err := h.uc.GetReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
