package ports

import (
	"context"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
)

// Puertos hacia el API REST de Blend Vinos. El gateway es un cliente de un API
// opaco: cada llamada viaja con el bearer token del usuario que la origina y
// respeta la cancelación del context.

// MovementAPI operaciones de movimientos de stock.
type MovementAPI interface {
	CreateMovement(ctx context.Context, token string, payload dto.CreateMovementPayload) (*entity.Movement, error)
	MovementsByMonth(ctx context.Context, token string, year, month int, accion string) ([]entity.Movement, error)
	TopSoldWines(ctx context.Context, token string) ([]entity.TopSoldWine, error)
}

// PartyDirectory directorio de usuarios/clientes.
type PartyDirectory interface {
	ListUsers(ctx context.Context, token string) ([]entity.Party, error)
	CurrentUser(ctx context.Context, token string) (*entity.Party, error)
	RegisterUser(ctx context.Context, token string, in dto.RegisterUserRequest) (*entity.Party, error)
	UpdateUser(ctx context.Context, token string, id int64, in dto.UpdateUserRequest) (*entity.Party, error)
	DeleteUser(ctx context.Context, token string, id int64) error
	ResetUserPassword(ctx context.Context, token string, id int64) error
}

// WineCatalog catálogo de vinos.
type WineCatalog interface {
	ListWines(ctx context.Context, token string) ([]entity.Wine, error)
	FindWineByCode(ctx context.Context, token, code string) (*entity.Wine, error)
	WineByID(ctx context.Context, token string, id int64) (*entity.Wine, error)
	PaginatedWines(ctx context.Context, token string, q dto.PaginatedWinesQuery) ([]entity.Wine, error)
	CreateWine(ctx context.Context, token string, in dto.WineUpsertRequest) (*entity.Wine, error)
	UpdateWine(ctx context.Context, token string, id int64, in dto.WineUpsertRequest) (*entity.Wine, error)
	DeleteWine(ctx context.Context, token string, id int64) error
}

// AuthAPI autenticación contra el upstream.
type AuthAPI interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}
