package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrEmptyCode       = errors.New("código de vino vacío")
	ErrDuplicateItem   = errors.New("ese vino ya fue agregado a la lista")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrIndexOutOfRange = errors.New("índice fuera de rango")
	ErrDraftNotReady   = errors.New("el borrador no está listo para enviarse")
	ErrSubmitInFlight  = errors.New("ya hay un envío en curso")
	ErrSessionNotFound = errors.New("sesión de movimiento no encontrada")
	ErrSessionClosed   = errors.New("sesión de movimiento cerrada")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrInvalidInput    = errors.New("entrada inválida")
)
