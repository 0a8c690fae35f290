package blendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/dto"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/ports"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa todos los puertos.
var (
	_ ports.MovementAPI    = (*Client)(nil)
	_ ports.PartyDirectory = (*Client)(nil)
	_ ports.WineCatalog    = (*Client)(nil)
	_ ports.AuthAPI        = (*Client)(nil)
)

// maxBodyBytes tope de lectura de respuestas del upstream.
const maxBodyBytes = 1 << 20

// Client es el cliente HTTP del API REST de Blend Vinos. Cada llamada viaja
// con el bearer token del usuario y respeta la cancelación del context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. baseURL sin barra final (ej. https://api.blendvinos.com).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError es cualquier respuesta no exitosa del upstream: estado, texto del
// estado y cuerpo crudo. El mensaje se muestra tal cual al usuario.
type APIError struct {
	Status     int
	StatusText string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Request failed: %d %s - %s", e.Status, e.StatusText, e.Body)
}

// do ejecuta la petición y devuelve el cuerpo crudo. Un estado fuera de 2xx
// se traduce a *APIError; la cancelación del context se devuelve como tal
// para que el caller pueda distinguirla.
func (c *Client) do(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("blendapi: serializar request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("blendapi: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("blendapi: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("blendapi: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}

// get/post/put/del azúcar sobre do con decodificación opcional.
func (c *Client) decode(raw []byte, out any) error {
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("blendapi: deserializar respuesta: %w", err)
	}
	return nil
}

// decodeList acepta las dos formas que devuelve el upstream para listados:
// un array pelado o un objeto {items: [...]}. Cualquier otra forma cae en
// lista vacía en lugar de error, igual que hacía el front.
func decodeList[T any](raw []byte) []T {
	var arr []T
	if err := json.Unmarshal(raw, &arr); err == nil && arr != nil {
		return arr
	}
	var wrapped struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Items != nil {
		return wrapped.Items
	}
	return []T{}
}

// ── AuthAPI ───────────────────────────────────────────────────────────────────

// Login autentica contra el upstream y devuelve el token emitido.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/auth/login", "", in)
	if err != nil {
		return nil, err
	}
	var out dto.LoginResponse
	if err := c.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── MovementAPI ───────────────────────────────────────────────────────────────

// CreateMovement registra un movimiento multi-renglón.
func (c *Client) CreateMovement(ctx context.Context, token string, payload dto.CreateMovementPayload) (*entity.Movement, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/movements/", token, payload)
	if err != nil {
		return nil, err
	}
	var out entity.Movement
	if err := c.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MovementsByMonth trae el historial de un mes; accion filtra COMPRA o VENTA si no está vacío.
func (c *Client) MovementsByMonth(ctx context.Context, token string, year, month int, accion string) ([]entity.Movement, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))
	if a := strings.TrimSpace(accion); a != "" {
		q.Set("accion", a)
	}
	raw, err := c.do(ctx, http.MethodGet, "/api/movements/by-month?"+q.Encode(), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Movement](raw), nil
}

// TopSoldWines trae el ranking de vinos más vendidos.
func (c *Client) TopSoldWines(ctx context.Context, token string) ([]entity.TopSoldWine, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/movements/top-sold", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.TopSoldWine](raw), nil
}

// ── PartyDirectory ────────────────────────────────────────────────────────────

// ListUsers trae el listado completo de usuarios/clientes.
func (c *Client) ListUsers(ctx context.Context, token string) ([]entity.Party, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/users/", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Party](raw), nil
}

// CurrentUser trae el perfil del usuario autenticado.
func (c *Client) CurrentUser(ctx context.Context, token string) (*entity.Party, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/users/me", token, nil)
	if err != nil {
		return nil, err
	}
	var out entity.Party
	if err := c.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterUser da de alta un usuario (el upstream lo expone bajo /api/auth/register).
func (c *Client) RegisterUser(ctx context.Context, token string, in dto.RegisterUserRequest) (*entity.Party, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/auth/register", token, in)
	if err != nil {
		return nil, err
	}
	var out entity.Party
	if err := c.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser edita campos del usuario id.
func (c *Client) UpdateUser(ctx context.Context, token string, id int64, in dto.UpdateUserRequest) (*entity.Party, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/users/"+strconv.FormatInt(id, 10), token, in)
	if err != nil {
		return nil, err
	}
	var out entity.Party
	if err := c.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser elimina el usuario id.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/users/"+strconv.FormatInt(id, 10), token, nil)
	return err
}

// ResetUserPassword restablece la contraseña del usuario id.
func (c *Client) ResetUserPassword(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodPut, "/api/users/"+strconv.FormatInt(id, 10)+"/reset-password", token, nil)
	return err
}

// ── WineCatalog ───────────────────────────────────────────────────────────────

// ListWines trae el catálogo completo.
func (c *Client) ListWines(ctx context.Context, token string) ([]entity.Wine, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/wines", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Wine](raw), nil
}

// FindWineByCode busca un vino por su código humano.
func (c *Client) FindWineByCode(ctx context.Context, token, code string) (*entity.Wine, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	raw, err := c.do(ctx, http.MethodGet, "/api/wines/find/"+url.PathEscape(code), token, nil)
	if err != nil {
		return nil, err
	}
	var out entity.Wine
	if err := c.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WineByID trae un vino por id.
func (c *Client) WineByID(ctx context.Context, token string, id int64) (*entity.Wine, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/wines/"+strconv.FormatInt(id, 10), token, nil)
	if err != nil {
		return nil, err
	}
	var out entity.Wine
	if err := c.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaginatedWines trae una página del inventario ordenado.
func (c *Client) PaginatedWines(ctx context.Context, token string, in dto.PaginatedWinesQuery) ([]entity.Wine, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(in.Page))
	q.Set("limit", strconv.Itoa(in.Limit))
	q.Set("order", in.Order)
	q.Set("orderBy", in.OrderBy)
	if s := strings.TrimSpace(in.Q); s != "" {
		q.Set("q", s)
	}
	raw, err := c.do(ctx, http.MethodGet, "/api/wines/paginated?"+q.Encode(), token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Wine](raw), nil
}

// CreateWine da de alta un vino.
func (c *Client) CreateWine(ctx context.Context, token string, in dto.WineUpsertRequest) (*entity.Wine, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/wines/", token, in)
	if err != nil {
		return nil, err
	}
	var out entity.Wine
	if err := c.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWine edita el vino id.
func (c *Client) UpdateWine(ctx context.Context, token string, id int64, in dto.WineUpsertRequest) (*entity.Wine, error) {
	raw, err := c.do(ctx, http.MethodPut, "/api/wines/"+strconv.FormatInt(id, 10), token, in)
	if err != nil {
		return nil, err
	}
	var out entity.Wine
	if err := c.decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWine elimina el vino id.
func (c *Client) DeleteWine(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/wines/"+strconv.FormatInt(id, 10), token, nil)
	return err
}
