package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/usecase"
)

// HistoryHandler pantalla Historial y ranking de más vendidos.
type HistoryHandler struct {
	uc *usecase.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// ByMonth godoc
// @Summary      Movimientos de un mes
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        year    query  int     true   "año"
// @Param        month   query  int     true   "mes 1-12, no futuro"
// @Param        accion  query  string  false  "COMPRA | VENTA"
// @Success      200  {array}  entity.Movement
// @Router       /api/movements/by-month [get]
func (h *HistoryHandler) ByMonth(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	movements, err := h.uc.ByMonth(c.Context(), GetSession(c).Token, year, month, c.Query("accion"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(movements)
}

func (h *HistoryHandler) TopSold(c *fiber.Ctx) error {
	top, err := h.uc.TopSold(c.Context(), GetSession(c).Token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(top)
}
