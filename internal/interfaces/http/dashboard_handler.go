package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/stockflow-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints de analítica del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetMetrics conteos de productos, ubicaciones y movimientos. GET /api/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	out, err := h.uc.GetMetrics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetTrend movimientos por día, últimos 7 días UTC. GET /api/dashboard/trend
//
// Respuesta: {labels: [7 fechas YYYY-MM-DD ascendentes], data: [7 conteos]}.
// Los días sin movimientos aparecen con cero.
func (h *DashboardHandler) GetTrend(c *fiber.Ctx) error {
	out, err := h.uc.GetTrend(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetTopProducts top 5 productos por volumen movido. GET /api/dashboard/top-products
func (h *DashboardHandler) GetTopProducts(c *fiber.Ctx) error {
	out, err := h.uc.GetTopProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetRecent últimos 10 movimientos. GET /api/dashboard/recent
func (h *DashboardHandler) GetRecent(c *fiber.Ctx) error {
	out, err := h.uc.GetRecent(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
