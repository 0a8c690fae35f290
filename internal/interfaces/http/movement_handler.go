package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/movement"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
)

// MovementHandler maneja la pantalla "Nuevo Movimiento": sesiones del flujo,
// renglones del borrador y envío.
type MovementHandler struct {
	store *movement.Store
}

// NewMovementHandler construye el handler.
func NewMovementHandler(store *movement.Store) *MovementHandler {
	return &MovementHandler{store: store}
}

// session busca la sesión del path y verifica que pertenezca al token de la
// petición; una sesión ajena se responde como inexistente.
func (h *MovementHandler) session(c *fiber.Ctx) (*movement.Session, error) {
	s, err := h.store.Get(c.Params("id"))
	if err != nil {
		return nil, err
	}
	sess := GetSession(c)
	if sess == nil || !s.OwnedBy(sess.Token) {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// OpenSession godoc
// @Summary      Abrir sesión del flujo de movimientos
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenSessionRequest  false  "type: COMPRA|VENTA (default COMPRA)"
// @Success      201   {object}  dto.SessionStateResponse
// @Router       /api/movements/sessions [post]
func (h *MovementHandler) OpenSession(c *fiber.Ctx) error {
	var in dto.OpenSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	sess := GetSession(c)
	s := h.store.Open(sess.Token, in.Type)
	return c.Status(fiber.StatusCreated).JSON(s.State())
}

// GetState devuelve la foto actual de la sesión para renderizar la pantalla.
func (h *MovementHandler) GetState(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(s.State())
}

// CloseSession descarta la sesión (navegación fuera de la pantalla): cancela
// la carga en vuelo y tira el borrador.
func (h *MovementHandler) CloseSession(c *fiber.Ctx) error {
	if _, err := h.session(c); err != nil {
		return writeError(c, err)
	}
	if err := h.store.Close(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem agrega el código tecleado a la lista del borrador.
// Duplicado -> 409 con la lista intacta; código en blanco -> 422 sin efectos.
func (h *MovementHandler) AddItem(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := s.AddItem(in.WineCode); err != nil {
		return writeError(c, err)
	}
	return c.JSON(s.State())
}

// UpdateQuantity edita la cantidad de un renglón. "" deja el campo vacío;
// un valor inválido se descarta (422, borrador sin cambios ni mensaje).
func (h *MovementHandler) UpdateQuantity(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return writeError(c, domain.ErrIndexOutOfRange)
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := s.UpdateQuantity(index, in.Quantity); err != nil {
		return writeError(c, err)
	}
	return c.JSON(s.State())
}

// RemoveItem quita un renglón del borrador, sin confirmación.
func (h *MovementHandler) RemoveItem(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return writeError(c, domain.ErrIndexOutOfRange)
	}
	if err := s.RemoveItem(index); err != nil {
		return writeError(c, err)
	}
	return c.JSON(s.State())
}

// UpdateDraft cambia tipo, comentario o atribución de cliente.
func (h *MovementHandler) UpdateDraft(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := s.Update(in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(s.State())
}

// Submit valida la compuerta y envía el movimiento al upstream. Con éxito el
// borrador queda limpio; si el upstream falla, el borrador se conserva y el
// error llega verbatim en el estado.
func (h *MovementHandler) Submit(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	if _, err := s.Submit(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s.State())
}
