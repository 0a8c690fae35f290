package usecase

import (
	"context"
	"strings"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/ports"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
)

// UserUseCase pantallas de usuarios y configuraciones.
type UserUseCase struct {
	directory ports.PartyDirectory
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(directory ports.PartyDirectory) *UserUseCase {
	return &UserUseCase{directory: directory}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context, token string) ([]entity.Party, error) {
	return uc.directory.ListUsers(ctx, token)
}

// Current devuelve el perfil del usuario autenticado.
func (uc *UserUseCase) Current(ctx context.Context, token string) (*entity.Party, error) {
	return uc.directory.CurrentUser(ctx, token)
}

// Register da de alta un usuario (solo admin).
func (uc *UserUseCase) Register(ctx context.Context, token string, in dto.RegisterUserRequest) (*entity.Party, error) {
	if strings.TrimSpace(in.Username) == "" && strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.directory.RegisterUser(ctx, token, in)
}

// UpdateProfile edita campos del propio perfil (pantalla Configuraciones).
// Si llega contraseña debe venir con su confirmación ya verificada por la
// pantalla; acá solo se exige que no venga en blanco.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, token string, id int64, in dto.UpdateUserRequest) (*entity.Party, error) {
	if in.Contrasena != nil && strings.TrimSpace(*in.Contrasena) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.directory.UpdateUser(ctx, token, id, in)
}

// Delete elimina el usuario id (solo admin; la pantalla pide confirmación).
func (uc *UserUseCase) Delete(ctx context.Context, token string, id int64) error {
	return uc.directory.DeleteUser(ctx, token, id)
}

// ResetPassword restablece la contraseña del usuario id (solo admin).
func (uc *UserUseCase) ResetPassword(ctx context.Context, token string, id int64) error {
	return uc.directory.ResetUserPassword(ctx, token, id)
}
