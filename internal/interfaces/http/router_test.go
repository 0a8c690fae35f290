package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/auth"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/movement"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/usecase"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
	apphttp "github.com/tomasesquivelgc/blend-vinos-gateway/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeUpstream implementa los cuatro puertos del API de Blend Vinos con datos
// enlatados y registra los movimientos enviados.
type fakeUpstream struct {
	mu        sync.Mutex
	parties   []entity.Party
	wines     []entity.Wine
	movements []dto.CreateMovementPayload
}

func (f *fakeUpstream) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	return &dto.LoginResponse{Token: tokenFor(nil, 1, 2)}, nil
}

func (f *fakeUpstream) CreateMovement(ctx context.Context, token string, payload dto.CreateMovementPayload) (*entity.Movement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movements = append(f.movements, payload)
	return &entity.Movement{ID: int64(len(f.movements))}, nil
}

func (f *fakeUpstream) MovementsByMonth(context.Context, string, int, int, string) ([]entity.Movement, error) {
	return []entity.Movement{}, nil
}

func (f *fakeUpstream) TopSoldWines(context.Context, string) ([]entity.TopSoldWine, error) {
	return []entity.TopSoldWine{}, nil
}

func (f *fakeUpstream) ListUsers(context.Context, string) ([]entity.Party, error) {
	return f.parties, nil
}

func (f *fakeUpstream) CurrentUser(context.Context, string) (*entity.Party, error) {
	return &entity.Party{ID: 1, Nombre: "Tomás"}, nil
}

func (f *fakeUpstream) RegisterUser(ctx context.Context, token string, in dto.RegisterUserRequest) (*entity.Party, error) {
	return &entity.Party{ID: 99, Username: in.Username}, nil
}

func (f *fakeUpstream) UpdateUser(ctx context.Context, token string, id int64, in dto.UpdateUserRequest) (*entity.Party, error) {
	return &entity.Party{ID: id}, nil
}

func (f *fakeUpstream) DeleteUser(context.Context, string, int64) error        { return nil }
func (f *fakeUpstream) ResetUserPassword(context.Context, string, int64) error { return nil }

func (f *fakeUpstream) ListWines(context.Context, string) ([]entity.Wine, error) {
	return f.wines, nil
}

func (f *fakeUpstream) FindWineByCode(context.Context, string, string) (*entity.Wine, error) {
	return nil, errors.New("no implementado")
}

func (f *fakeUpstream) WineByID(context.Context, string, int64) (*entity.Wine, error) {
	return nil, errors.New("no implementado")
}

func (f *fakeUpstream) PaginatedWines(context.Context, string, dto.PaginatedWinesQuery) ([]entity.Wine, error) {
	return f.wines, nil
}

func (f *fakeUpstream) CreateWine(ctx context.Context, token string, in dto.WineUpsertRequest) (*entity.Wine, error) {
	return &entity.Wine{ID: 1, Codigo: in.Codigo, Nombre: in.Nombre}, nil
}

func (f *fakeUpstream) UpdateWine(ctx context.Context, token string, id int64, in dto.WineUpsertRequest) (*entity.Wine, error) {
	return &entity.Wine{ID: id, Codigo: in.Codigo, Nombre: in.Nombre}, nil
}

func (f *fakeUpstream) DeleteWine(context.Context, string, int64) error { return nil }

// buildTestApp construye la app Fiber completa con el router y la tabla de
// políticas, respaldada por el upstream falso.
func buildTestApp(up *fakeUpstream) sApp {
	store := movement.NewStore(up, up, time.Minute, nil)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    auth.NewUseCase(up),
		WineUC:    usecase.NewWineUseCase(up),
		UserUC:    usecase.NewUserUseCase(up),
		HistoryUC: usecase.NewHistoryUseCase(up),
		Store:     store,
	})
	return sApp{app}
}

type sApp struct{ *fiber.App }

// tokenFor firma un JWT con el rol y la expiración dados. La firma no se
// verifica en el gateway; alcanza con que el payload decodifique.
func tokenFor(t *testing.T, rolID int, horas int) string {
	if t != nil {
		t.Helper()
	}
	claims := jwt.MapClaims{
		"user_id": 1,
		"rol_id":  rolID,
		"exp":     time.Now().Add(time.Duration(horas) * time.Hour).Unix(),
	}
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-upstream"))
	return tok
}

func (a sApp) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeState(t *testing.T, resp *http.Response) dto.SessionStateResponse {
	t.Helper()
	defer resp.Body.Close()
	var st dto.SessionStateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	return st
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de políticas: autenticación y rol
// ──────────────────────────────────────────────────────────────────────────────

func TestRutas_SinTokenRetorna401(t *testing.T) {
	app := buildTestApp(&fakeUpstream{})
	resp := app.do(t, http.MethodGet, "/api/wines", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutas_TokenVencidoRetorna401(t *testing.T) {
	app := buildTestApp(&fakeUpstream{})
	resp := app.do(t, http.MethodGet, "/api/wines", tokenFor(t, 2, -1), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "un token vencido no pasa el middleware")
}

func TestRutas_NoAdminBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(&fakeUpstream{})
	resp := app.do(t, http.MethodPost, "/api/wines", tokenFor(t, 2, 1),
		dto.WineUpsertRequest{Codigo: "W1", Nombre: "Malbec"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRutas_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(&fakeUpstream{})
	resp := app.do(t, http.MethodPost, "/api/wines", tokenFor(t, 1, 1),
		dto.WineUpsertRequest{Codigo: "W1", Nombre: "Malbec"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRutas_NoAdminAccedeRutasComunes(t *testing.T) {
	app := buildTestApp(&fakeUpstream{wines: []entity.Wine{{ID: 1, Codigo: "W1"}}})
	resp := app.do(t, http.MethodGet, "/api/wines", tokenFor(t, 2, 1), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "listar vinos no exige rol admin")
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de movimientos de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoMovimientos_DePuntaAPunta(t *testing.T) {
	up := &fakeUpstream{parties: []entity.Party{{ID: 7, Nombre: "Lucía"}}}
	app := buildTestApp(up)
	tok := tokenFor(t, 2, 1)

	// Abrir la pantalla con tipo VENTA.
	resp := app.do(t, http.MethodPost, "/api/movements/sessions", tok, dto.OpenSessionRequest{Type: "VENTA"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	st := decodeState(t, resp)
	require.NotEmpty(t, st.SessionID)
	assert.Equal(t, "VENTA", st.Type)
	base := "/api/movements/sessions/" + st.SessionID

	// Agregar dos renglones.
	resp = app.do(t, http.MethodPost, base+"/items", tok, dto.AddItemRequest{WineCode: "W1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = decodeState(t, resp)
	resp = app.do(t, http.MethodPost, base+"/items", tok, dto.AddItemRequest{WineCode: "W2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = decodeState(t, resp)

	// Duplicado: 409 y la lista no crece.
	resp = app.do(t, http.MethodPost, base+"/items", tok, dto.AddItemRequest{WineCode: "w1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Cantidades.
	resp = app.do(t, http.MethodPut, base+"/items/0", tok, dto.UpdateQuantityRequest{Quantity: "2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = decodeState(t, resp)
	resp = app.do(t, http.MethodPut, base+"/items/1", tok, dto.UpdateQuantityRequest{Quantity: "3"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st = decodeState(t, resp)
	require.Len(t, st.Items, 2)
	assert.True(t, st.CanSubmit)

	// Enviar.
	resp = app.do(t, http.MethodPost, base+"/submit", tok, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	st = decodeState(t, resp)
	assert.Empty(t, st.Items, "el borrador queda limpio tras el éxito")
	assert.Equal(t, "Movimiento creado correctamente", st.Success)

	up.mu.Lock()
	defer up.mu.Unlock()
	require.Len(t, up.movements, 1)
	assert.Equal(t, []string{"W1", "W2"}, up.movements[0].WineID)
	assert.Equal(t, []int{2, 3}, up.movements[0].Quantity)
	assert.Equal(t, "VENTA", up.movements[0].Type)
}

// Una sesión ajena se responde como inexistente: el borrador es propiedad
// exclusiva de quien abrió la pantalla.
func TestFlujoMovimientos_SesionAjena(t *testing.T) {
	app := buildTestApp(&fakeUpstream{})
	dueno := tokenFor(t, 2, 1)
	otro := tokenFor(t, 1, 1)

	resp := app.do(t, http.MethodPost, "/api/movements/sessions", dueno, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	st := decodeState(t, resp)

	resp = app.do(t, http.MethodPost, "/api/movements/sessions/"+st.SessionID+"/items", otro, dto.AddItemRequest{WineCode: "W1"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
