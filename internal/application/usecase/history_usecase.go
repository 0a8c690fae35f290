package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/ports"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
)

// HistoryUseCase pantalla Historial: movimientos por mes y ranking de ventas.
type HistoryUseCase struct {
	movements ports.MovementAPI
	now       func() time.Time
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movements ports.MovementAPI) *HistoryUseCase {
	return &HistoryUseCase{movements: movements, now: time.Now}
}

// ByMonth devuelve los movimientos de un mes. El mes pedido no puede estar en
// el futuro (la pantalla bloquea la flecha "siguiente" en el mes corriente) y
// accion, si viene, debe ser COMPRA o VENTA.
func (uc *HistoryUseCase) ByMonth(ctx context.Context, token string, year, month int, accion string) ([]entity.Movement, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	if year > now.Year() || (year == now.Year() && month > int(now.Month())) {
		return nil, domain.ErrInvalidInput
	}
	if a := strings.ToUpper(strings.TrimSpace(accion)); a != "" {
		if a != entity.MovementTypeCompra && a != entity.MovementTypeVenta {
			return nil, domain.ErrInvalidInput
		}
		accion = a
	}
	return uc.movements.MovementsByMonth(ctx, token, year, month, accion)
}

// TopSold devuelve el ranking de vinos más vendidos.
func (uc *HistoryUseCase) TopSold(ctx context.Context, token string) ([]entity.TopSoldWine, error) {
	return uc.movements.TopSoldWines(ctx, token)
}
