package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/movement"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del colector de renglones (operaciones puras sobre el borrador)
// ──────────────────────────────────────────────────────────────────────────────

func TestNewDraft_TipoInicial(t *testing.T) {
	assert.Equal(t, entity.MovementTypeVenta, movement.NewDraft("VENTA").Type)
	assert.Equal(t, entity.MovementTypeVenta, movement.NewDraft(" venta ").Type, "el tipo se normaliza a mayúsculas")
	assert.Equal(t, entity.MovementTypeCompra, movement.NewDraft("").Type, "vacío cae en COMPRA")
	assert.Equal(t, entity.MovementTypeCompra, movement.NewDraft("AJUSTE").Type, "tipo desconocido cae en COMPRA")
}

// Agregar un código a un borrador vacío deja exactamente un renglón con cantidad 1.
func TestAddItem_PrimerCodigo(t *testing.T) {
	d := movement.NewDraft("COMPRA")

	require.NoError(t, movement.AddItem(d, "  ABC123  "))

	require.Len(t, d.Items, 1)
	assert.Equal(t, "ABC123", d.Items[0].WineCode, "el código se guarda recortado")
	assert.Equal(t, 1, d.Items[0].Quantity, "la cantidad inicial es 1")
}

func TestAddItem_CodigoVacio_NoOp(t *testing.T) {
	d := movement.NewDraft("COMPRA")

	assert.ErrorIs(t, movement.AddItem(d, "   "), domain.ErrEmptyCode)
	assert.Empty(t, d.Items, "un código en blanco no agrega nada")
}

// Repetir un código (en cualquier combinación de mayúsculas) se rechaza y la
// lista queda intacta: no hay incremento implícito de cantidad.
func TestAddItem_DuplicadoSinDistinguirMayusculas(t *testing.T) {
	d := movement.NewDraft("COMPRA")
	require.NoError(t, movement.AddItem(d, "ABC"))
	require.NoError(t, movement.UpdateQuantity(d, 0, "5"))

	err := movement.AddItem(d, "abc")

	assert.ErrorIs(t, err, domain.ErrDuplicateItem)
	require.Len(t, d.Items, 1, "la lista no crece con un duplicado")
	assert.Equal(t, 5, d.Items[0].Quantity, "la cantidad existente no se toca")
}

func TestUpdateQuantity_CampoVacio_EsCentinela(t *testing.T) {
	d := movement.NewDraft("COMPRA")
	require.NoError(t, movement.AddItem(d, "W1"))

	require.NoError(t, movement.UpdateQuantity(d, 0, ""))

	assert.Equal(t, entity.QuantityEmpty, d.Items[0].Quantity, "el renglón sigue presente pero vacío")
	assert.False(t, movement.AllQuantitiesValid(d), "el centinela bloquea el envío")

	require.NoError(t, movement.UpdateQuantity(d, 0, "3"))
	assert.Equal(t, 3, d.Items[0].Quantity)
	assert.True(t, movement.AllQuantitiesValid(d), "volver a un número positivo lo habilita")
}

// Valores que no sean enteros positivos finitos se descartan sin tocar la lista.
func TestUpdateQuantity_ValoresInvalidos(t *testing.T) {
	d := movement.NewDraft("COMPRA")
	require.NoError(t, movement.AddItem(d, "W1"))

	for _, raw := range []string{"0", "-2", "abc", "2.5", "NaN", "Inf", "1e400"} {
		err := movement.UpdateQuantity(d, 0, raw)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "valor %q", raw)
		assert.Equal(t, 1, d.Items[0].Quantity, "valor %q no debe cambiar la cantidad", raw)
	}
}

func TestUpdateQuantity_IndiceFueraDeRango(t *testing.T) {
	d := movement.NewDraft("COMPRA")
	assert.ErrorIs(t, movement.UpdateQuantity(d, 0, "1"), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, movement.UpdateQuantity(d, -1, "1"), domain.ErrIndexOutOfRange)
}

func TestRemoveItem_ConservaElOrden(t *testing.T) {
	d := movement.NewDraft("COMPRA")
	for _, code := range []string{"A", "B", "C"} {
		require.NoError(t, movement.AddItem(d, code))
	}

	require.NoError(t, movement.RemoveItem(d, 1))

	require.Len(t, d.Items, 2)
	assert.Equal(t, "A", d.Items[0].WineCode)
	assert.Equal(t, "C", d.Items[1].WineCode, "el orden de inserción se conserva")
}
