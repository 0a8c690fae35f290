package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/infrastructure/blendapi"
)

// statusClientClosedRequest convención nginx para "el cliente cortó antes de
// la respuesta"; no existe constante estándar.
const statusClientClosedRequest = 499

// writeError traduce errores de dominio y del upstream a respuestas HTTP.
// Los fallos del upstream conservan su status y su mensaje se entrega tal
// cual: la pantalla lo muestra verbatim.
func writeError(c *fiber.Ctx, err error) error {
	var apiErr *blendapi.APIError
	switch {
	case errors.As(err, &apiErr):
		return c.Status(apiErr.Status).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: apiErr.Error()})
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SESSION_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrSessionClosed):
		return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "SESSION_CLOSED", Message: err.Error()})
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateItem):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ITEM", Message: "Ese vino ya fue agregado a la lista"})
	case errors.Is(err, domain.ErrSubmitInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_FLIGHT", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyCode),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrDraftNotReady),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, context.Canceled):
		// El cliente cortó la petición: no hay nadie del otro lado y no es un
		// fallo del gateway.
		return c.SendStatus(statusClientClosedRequest)
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "UPSTREAM_TIMEOUT", Message: "el upstream no respondió a tiempo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
