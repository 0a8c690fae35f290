package movement

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
)

// Operaciones puras sobre el borrador de movimiento. Ninguna toca la red ni
// estado compartido; la Session serializa las llamadas.

// NewDraft crea un borrador vacío con el tipo inicial que llega de la pantalla
// anterior. Tipo vacío o desconocido cae en COMPRA, igual que el front original.
func NewDraft(initialType string) *entity.MovementDraft {
	t := strings.ToUpper(strings.TrimSpace(initialType))
	if t != entity.MovementTypeCompra && t != entity.MovementTypeVenta {
		t = entity.MovementTypeCompra
	}
	return &entity.MovementDraft{Type: t}
}

// AddItem agrega un código de vino al final de la lista con cantidad 1.
//   - código en blanco -> ErrEmptyCode, sin ningún efecto.
//   - código ya presente (comparación sin mayúsculas) -> ErrDuplicateItem y la
//     lista queda intacta: repetir un código es un error del usuario, no un
//     incremento implícito de cantidad.
func AddItem(d *entity.MovementDraft, rawCode string) error {
	code := strings.TrimSpace(rawCode)
	if code == "" {
		return domain.ErrEmptyCode
	}
	for _, it := range d.Items {
		if strings.EqualFold(it.WineCode, code) {
			return domain.ErrDuplicateItem
		}
	}
	d.Items = append(d.Items, entity.LineItem{WineCode: code, Quantity: 1})
	return nil
}

// UpdateQuantity reemplaza la cantidad del renglón index a partir del valor
// crudo del campo. "" deja el renglón en el centinela vacío (editable pero no
// enviable). Un valor que no sea entero positivo finito devuelve
// ErrInvalidQuantity y la lista no cambia; el caller lo descarta en silencio.
func UpdateQuantity(d *entity.MovementDraft, index int, raw string) error {
	if index < 0 || index >= len(d.Items) {
		return domain.ErrIndexOutOfRange
	}
	if raw == "" {
		d.Items[index].Quantity = entity.QuantityEmpty
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f != math.Trunc(f) {
		return domain.ErrInvalidQuantity
	}
	d.Items[index].Quantity = int(f)
	return nil
}

// RemoveItem quita el renglón index. No pide confirmación: a diferencia del
// borrado de vinos o usuarios, quitar un renglón del borrador es reversible.
func RemoveItem(d *entity.MovementDraft, index int) error {
	if index < 0 || index >= len(d.Items) {
		return domain.ErrIndexOutOfRange
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// AllQuantitiesValid indica si todos los renglones tienen cantidad positiva
// (ninguno quedó en el centinela vacío).
func AllQuantitiesValid(d *entity.MovementDraft) bool {
	for _, it := range d.Items {
		if it.Quantity == entity.QuantityEmpty || it.Quantity <= 0 {
			return false
		}
	}
	return true
}
