package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/usecase"
)

// WineHandler pantallas del catálogo: inventario, detalle y formulario de vino.
type WineHandler struct {
	uc *usecase.WineUseCase
}

// NewWineHandler construye el handler.
func NewWineHandler(uc *usecase.WineUseCase) *WineHandler {
	return &WineHandler{uc: uc}
}

func (h *WineHandler) List(c *fiber.Ctx) error {
	wines, err := h.uc.List(c.Context(), GetSession(c).Token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(wines)
}

func (h *WineHandler) FindByCode(c *fiber.Ctx) error {
	wine, err := h.uc.FindByCode(c.Context(), GetSession(c).Token, c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(wine)
}

func (h *WineHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	wine, err := h.uc.GetByID(c.Context(), GetSession(c).Token, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(wine)
}

// Paginated godoc
// @Summary      Inventario paginado
// @Tags         wines
// @Security     Bearer
// @Produce      json
// @Param        page     query  int     false  "página base 0"
// @Param        limit    query  int     false  "tamaño de página (default 5)"
// @Param        order    query  string  false  "ASC | DESC"
// @Param        orderBy  query  string  false  "columna de orden (default total)"
// @Param        q        query  string  false  "búsqueda libre"
// @Success      200  {array}  entity.Wine
// @Router       /api/wines/paginated [get]
func (h *WineHandler) Paginated(c *fiber.Ctx) error {
	q := dto.PaginatedWinesQuery{
		Page:    c.QueryInt("page", 0),
		Limit:   c.QueryInt("limit", 5),
		Order:   c.Query("order", "DESC"),
		OrderBy: c.Query("orderBy", "total"),
		Q:       c.Query("q"),
	}
	wines, err := h.uc.Paginated(c.Context(), GetSession(c).Token, q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(wines)
}

func (h *WineHandler) Create(c *fiber.Ctx) error {
	var in dto.WineUpsertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wine, err := h.uc.Create(c.Context(), GetSession(c).Token, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(wine)
}

func (h *WineHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.WineUpsertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wine, err := h.uc.Update(c.Context(), GetSession(c).Token, id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(wine)
}

func (h *WineHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), GetSession(c).Token, id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
