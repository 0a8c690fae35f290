package entity

import "time"

// Tipos de movimiento de stock (los mismos valores que espera el API de Blend Vinos).
const (
	MovementTypeCompra = "COMPRA" // entrada de stock
	MovementTypeVenta  = "VENTA"  // salida de stock
)

// QuantityEmpty es el centinela de cantidad "vacía": el usuario borró el campo
// y todavía no escribió un valor nuevo. Un ítem en este estado es visible pero
// bloquea el envío del borrador.
const QuantityEmpty = 0

// LineItem es un renglón del borrador: un código de vino con su cantidad.
// El código lo teclea una persona; no es clave de base de datos y se compara
// sin distinguir mayúsculas dentro del borrador.
type LineItem struct {
	WineCode string
	Quantity int // > 0, o QuantityEmpty mientras se edita
}

// MovementDraft es el movimiento en curso: efímero, vive solo mientras dura la
// sesión del flujo y nunca se persiste del lado del gateway.
type MovementDraft struct {
	Type     string     // COMPRA | VENTA
	Items    []LineItem // el orden de inserción determina el orden en pantalla y en el payload
	ClientID *int64     // opcional
	Comment  string     // texto libre; se normaliza a null al enviar si queda en blanco
}

// Movement es un movimiento ya registrado por el upstream (pantalla Historial).
type Movement struct {
	ID         int64      `json:"id"`
	VinoID     int64      `json:"vino_id"`
	VinoNombre string     `json:"vino_nombre,omitempty"`
	Accion     string     `json:"accion"`
	Cantidad   int        `json:"cantidad"`
	Comentario string     `json:"comentario,omitempty"`
	ClienteID  *int64     `json:"cliente_id,omitempty"`
	Fecha      *time.Time `json:"fecha,omitempty"`
}
