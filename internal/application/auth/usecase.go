package auth

import (
	"context"
	"time"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/ports"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/pkg/token"
)

// Session es el estado de autenticación de una petición: objeto explícito que
// viaja por inyección (locals de Fiber), nunca estado global mutable. Se
// construye al entrar cada request a partir del bearer token y muere con ella.
type Session struct {
	Token     string
	UserID    int64
	RolID     int
	Nombre    string
	ExpiresAt *time.Time
}

// IsAdmin indica si la sesión pertenece a un administrador.
func (s *Session) IsAdmin() bool {
	return s != nil && s.RolID == token.RolAdmin
}

// FromToken construye la sesión a partir del token. Token vencido, vacío o
// no decodificable -> ErrUnauthorized.
func FromToken(tokenString string, now time.Time) (*Session, error) {
	if token.IsExpired(tokenString, now) {
		return nil, domain.ErrUnauthorized
	}
	claims, err := token.Inspect(tokenString)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	s := &Session{
		Token:  tokenString,
		UserID: claims.UserID,
		RolID:  claims.RolID,
		Nombre: claims.Nombre,
	}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		s.ExpiresAt = &t
	}
	return s, nil
}

// UseCase orquesta el login contra el upstream. El gateway no guarda
// credenciales ni contraseñas: delega todo en /api/auth/login y devuelve la
// sesión armada con el token emitido.
type UseCase struct {
	api ports.AuthAPI
	now func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(api ports.AuthAPI) *UseCase {
	return &UseCase{api: api, now: time.Now}
}

// Login autentica al usuario y devuelve la sesión junto con el token crudo
// (el navegador lo guarda y lo manda como Bearer en cada petición).
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*Session, error) {
	resp, err := uc.api.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Token == "" {
		return nil, domain.ErrUnauthorized
	}
	return FromToken(resp.Token, uc.now())
}
