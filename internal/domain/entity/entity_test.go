package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
)

// El listado de usuarios llega con claves en inglés (name/username) y /me con
// claves en español (nombre/nombredeusuario); Party decodifica ambos juegos y
// DisplayName resuelve igual con cualquiera.
func TestParty_DecodificaAmbosJuegosDeClaves(t *testing.T) {
	cases := []struct {
		nombre  string
		body    string
		display string
	}{
		{"claves del listado", `{"id":7,"name":"Lucía","username":"lu","email":"lu@blend.com"}`, "Lucía"},
		{"claves de /me", `{"id":7,"nombre":"Lucía","nombredeusuario":"lu","email":"lu@blend.com"}`, "Lucía"},
		{"sin nombre cae en username", `{"id":7,"username":"lu","email":"lu@blend.com"}`, "lu"},
		{"solo email", `{"id":7,"email":"lu@blend.com"}`, "lu@blend.com"},
		{"sin nada", `{"id":7}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			var p entity.Party
			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))
			assert.Equal(t, int64(7), p.ID)
			assert.Equal(t, tc.display, p.DisplayName())
		})
	}
}

func TestParty_DecodificaTelefonoYRol(t *testing.T) {
	var p entity.Party
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"telefono":"555","rol_id":1}`), &p))
	assert.Equal(t, "555", p.Telefono)
	assert.Equal(t, 1, p.RolID)

	var q entity.Party
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"phone":"777"}`), &q))
	assert.Equal(t, "777", q.Telefono)
}

// El costo viaja siempre, también en cero: omitir un precio y que valga cero
// son cosas distintas para la pantalla del inventario.
func TestWine_CostoSiempreViaja(t *testing.T) {
	raw, err := json.Marshal(entity.Wine{ID: 1, Codigo: "W1", Nombre: "Malbec"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	_, ok := got["costo"]
	assert.True(t, ok, "la clave costo debe estar presente aun en cero")
}
