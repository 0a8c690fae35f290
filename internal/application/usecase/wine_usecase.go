package usecase

import (
	"context"
	"strings"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/ports"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
)

// Valores por defecto de la pantalla de inventario paginado.
const (
	defaultPageLimit = 5
	maxPageLimit     = 100
)

// WineUseCase pantallas del catálogo de vinos: son passthrough sobre el
// upstream, con la normalización de parámetros que hacía el front.
type WineUseCase struct {
	catalog ports.WineCatalog
}

// NewWineUseCase construye el caso de uso.
func NewWineUseCase(catalog ports.WineCatalog) *WineUseCase {
	return &WineUseCase{catalog: catalog}
}

// List devuelve el catálogo completo.
func (uc *WineUseCase) List(ctx context.Context, token string) ([]entity.Wine, error) {
	return uc.catalog.ListWines(ctx, token)
}

// FindByCode busca por código humano (el mismo que se teclea en movimientos).
func (uc *WineUseCase) FindByCode(ctx context.Context, token, code string) (*entity.Wine, error) {
	return uc.catalog.FindWineByCode(ctx, token, code)
}

// GetByID devuelve un vino por id.
func (uc *WineUseCase) GetByID(ctx context.Context, token string, id int64) (*entity.Wine, error) {
	return uc.catalog.WineByID(ctx, token, id)
}

// Paginated devuelve una página del inventario con los parámetros saneados.
func (uc *WineUseCase) Paginated(ctx context.Context, token string, q dto.PaginatedWinesQuery) ([]entity.Wine, error) {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Limit <= 0 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	if o := strings.ToUpper(q.Order); o == "ASC" || o == "DESC" {
		q.Order = o
	} else {
		q.Order = "DESC"
	}
	if q.OrderBy == "" {
		q.OrderBy = "total"
	}
	return uc.catalog.PaginatedWines(ctx, token, q)
}

// Create da de alta un vino. Código y nombre son obligatorios.
func (uc *WineUseCase) Create(ctx context.Context, token string, in dto.WineUpsertRequest) (*entity.Wine, error) {
	if strings.TrimSpace(in.Codigo) == "" || strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.catalog.CreateWine(ctx, token, in)
}

// Update edita el vino id.
func (uc *WineUseCase) Update(ctx context.Context, token string, id int64, in dto.WineUpsertRequest) (*entity.Wine, error) {
	return uc.catalog.UpdateWine(ctx, token, id, in)
}

// Delete elimina el vino id. La confirmación es responsabilidad de la
// pantalla; el upstream es quien actualiza la lista (nada optimista acá).
func (uc *WineUseCase) Delete(ctx context.Context, token string, id int64) error {
	return uc.catalog.DeleteWine(ctx, token, id)
}
