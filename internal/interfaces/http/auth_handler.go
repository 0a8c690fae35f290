package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/auth"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
)

// AuthHandler login contra el upstream.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// sessionResponse lo que recibe el navegador al autenticar: el token para el
// header Authorization y los datos de la sesión armada.
type sessionResponse struct {
	Token     string     `json:"token"`
	UserID    int64      `json:"user_id"`
	RolID     int        `json:"rol_id"`
	Nombre    string     `json:"nombre,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Login godoc
// @Summary      Autenticar contra el API de Blend Vinos
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "credenciales"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sess, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sessionResponse{
		Token:     sess.Token,
		UserID:    sess.UserID,
		RolID:     sess.RolID,
		Nombre:    sess.Nombre,
		ExpiresAt: sess.ExpiresAt,
	})
}
