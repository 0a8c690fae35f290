package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles del API de Blend Vinos. El claim rol_id viene en el token que emite el upstream.
const (
	RolAdmin = 1
)

// Claims incluye los claims estándar JWT más los campos propios del token de Blend Vinos.
// El gateway NO verifica la firma: el upstream es quien valida el token en cada
// petición; aquí solo se inspecciona para gatear rutas y detectar expiración,
// igual que lo hacía el front original al decodificar el payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	RolID  int    `json:"rol_id"`
	Nombre string `json:"nombre,omitempty"`
}

// Inspect decodifica los claims del token sin verificar la firma.
// Retorna error si el token no es un JWT bien formado.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token: vacío")
	}
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: decodificar claims: %w", err)
	}
	return claims, nil
}

// IsExpired indica si el token está vencido en el instante now. Función pura:
// no toca estado global ni el reloj. Reglas (mismas que el front original):
//   - token vacío o no decodificable -> expirado
//   - sin claim exp -> no expirado (se delega al upstream)
//   - exp <= now -> expirado
func IsExpired(tokenString string, now time.Time) bool {
	claims, err := Inspect(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}

// IsAdmin indica si los claims corresponden a un administrador (rol_id == 1).
func (c *Claims) IsAdmin() bool {
	return c != nil && c.RolID == RolAdmin
}
