package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/auth"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
)

// LocalSession key de la sesión de autenticación en c.Locals.
const LocalSession = "auth_session"

// AuthMiddleware exige un Bearer Token no vencido y deja la sesión explícita
// en c.Locals. El gateway no verifica la firma (eso lo hace el upstream en
// cada llamada); acá solo se gatea expiración y rol, igual que el front.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sess, err := auth.FromToken(tokenString, time.Now())
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de AuthMiddleware).
func GetSession(c *fiber.Ctx) *auth.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*auth.Session)
	return s
}

// RequireAdmin autoriza solo a administradores (rol_id == 1). Se aplica desde
// la tabla de políticas del router, nunca con chequeos sueltos por handler.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no encontrada en el contexto"})
		}
		if !sess.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol administrador"})
		}
		return c.Next()
	}
}
