package blendapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/infrastructure/blendapi"
)

const testToken = "un-token"

func newClient(t *testing.T, handler http.HandlerFunc) *blendapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return blendapi.New(srv.URL, 5*time.Second)
}

// Toda llamada autenticada viaja con el Bearer token y Content-Type JSON.
func TestClient_HeadersDeAutenticacion(t *testing.T) {
	var gotAuth, gotContentType, gotPath string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListUsers(context.Background(), testToken)
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+testToken, gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "/api/users/", gotPath)
}

// El upstream devuelve listados como array pelado o como {items: [...]};
// cualquier otra forma cae en lista vacía, nunca en error.
func TestClient_FormasDeListado(t *testing.T) {
	cases := []struct {
		nombre    string
		body      string
		esperados int
	}{
		{"array pelado", `[{"id":1},{"id":2}]`, 2},
		{"objeto items", `{"items":[{"id":1}]}`, 1},
		{"forma inesperada", `{"resultado":"ok"}`, 0},
		{"null", `null`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			users, err := c.ListUsers(context.Background(), testToken)
			require.NoError(t, err)
			assert.Len(t, users, tc.esperados)
		})
	}
}

// El listado de usuarios usa claves en inglés; el nombre a mostrar debe salir
// de name, no degradar al email.
func TestClient_ListUsersClavesDelListado(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":7,"name":"Lucía","username":"lu","email":"lu@blend.com"}]`))
	})

	users, err := c.ListUsers(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Lucía", users[0].DisplayName())
	assert.Equal(t, "lu@blend.com", users[0].Email)
}

// Un estado fuera de 2xx se convierte en APIError con el cuerpo verbatim.
func TestClient_ErrorDelUpstream(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`vino no encontrado`))
	})

	_, err := c.FindWineByCode(context.Background(), testToken, "XYZ")
	require.Error(t, err)

	var apiErr *blendapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Request failed: 404 Not Found - vino no encontrado", apiErr.Error())
}

// CreateMovement manda el body exacto del contrato: arrays paralelos y los
// campos opcionales en null explícito.
func TestClient_CreateMovementBody(t *testing.T) {
	var got map[string]any
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":10}`))
	})

	created, err := c.CreateMovement(context.Background(), testToken, dto.CreateMovementPayload{
		WineID:   []string{"W1", "W2"},
		Quantity: []int{2, 3},
		Type:     "VENTA",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)

	assert.Equal(t, []any{"W1", "W2"}, got["wine_id"])
	assert.Equal(t, []any{2.0, 3.0}, got["quantity"])
	assert.Equal(t, "VENTA", got["type"])
	assert.Nil(t, got["comment"], "comment en blanco viaja como null, no se omite")
	assert.Nil(t, got["client_id"])
	assert.Nil(t, got["nombre_de_cliente"])
	_, hasComment := got["comment"]
	assert.True(t, hasComment, "la clave comment debe estar presente")
}

// La cancelación del context se devuelve como tal para que el caller la
// distinga de un fallo real.
func TestClient_Cancelacion(t *testing.T) {
	started := make(chan struct{})
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.ListUsers(ctx, testToken)
		done <- err
	}()

	<-started
	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

// Los query params de los listados viajan como los arma la pantalla.
func TestClient_PaginatedQuery(t *testing.T) {
	var got string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.PaginatedWines(context.Background(), testToken, dto.PaginatedWinesQuery{
		Page: 2, Limit: 5, Order: "DESC", OrderBy: "total", Q: " malbec ",
	})
	require.NoError(t, err)
	assert.Equal(t, "limit=5&order=DESC&orderBy=total&page=2&q=malbec", got)
}
