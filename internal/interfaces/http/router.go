package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/auth"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/movement"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	WineUC    *usecase.WineUseCase
	UserUC    *usecase.UserUseCase
	HistoryUC *usecase.HistoryUseCase
	Store     *movement.Store
}

// Route una entrada de la tabla de políticas: método, path, si exige rol
// administrador y el handler. La autorización vive en esta tabla y la evalúa
// el router una sola vez, en lugar de chequeos ad-hoc repartidos por pantalla.
type Route struct {
	Method  string
	Path    string
	Admin   bool
	Handler fiber.Handler
}

// routeTable arma la tabla completa de rutas protegidas.
func routeTable(deps RouterDeps) []Route {
	movementHandler := NewMovementHandler(deps.Store)
	wineHandler := NewWineHandler(deps.WineUC)
	userHandler := NewUserHandler(deps.UserUC)
	historyHandler := NewHistoryHandler(deps.HistoryUC)

	return []Route{
		// Flujo de movimientos (cualquier usuario autenticado)
		{fiber.MethodPost, "/movements/sessions", false, movementHandler.OpenSession},
		{fiber.MethodGet, "/movements/sessions/:id", false, movementHandler.GetState},
		{fiber.MethodDelete, "/movements/sessions/:id", false, movementHandler.CloseSession},
		{fiber.MethodPatch, "/movements/sessions/:id", false, movementHandler.UpdateDraft},
		{fiber.MethodPost, "/movements/sessions/:id/items", false, movementHandler.AddItem},
		{fiber.MethodPut, "/movements/sessions/:id/items/:index", false, movementHandler.UpdateQuantity},
		{fiber.MethodDelete, "/movements/sessions/:id/items/:index", false, movementHandler.RemoveItem},
		{fiber.MethodPost, "/movements/sessions/:id/submit", false, movementHandler.Submit},

		// Historial
		{fiber.MethodGet, "/movements/by-month", false, historyHandler.ByMonth},
		{fiber.MethodGet, "/movements/top-sold", false, historyHandler.TopSold},

		// Catálogo de vinos; altas, ediciones y bajas son de administrador
		{fiber.MethodGet, "/wines", false, wineHandler.List},
		{fiber.MethodGet, "/wines/paginated", false, wineHandler.Paginated},
		{fiber.MethodGet, "/wines/find/:code", false, wineHandler.FindByCode},
		{fiber.MethodGet, "/wines/:id", false, wineHandler.GetByID},
		{fiber.MethodPost, "/wines", true, wineHandler.Create},
		{fiber.MethodPut, "/wines/:id", true, wineHandler.Update},
		{fiber.MethodDelete, "/wines/:id", true, wineHandler.Delete},

		// Usuarios; la gestión es de administrador, el perfil propio no
		{fiber.MethodGet, "/users", false, userHandler.List},
		{fiber.MethodGet, "/users/me", false, userHandler.Me},
		{fiber.MethodPut, "/users/:id", false, userHandler.UpdateProfile},
		{fiber.MethodPost, "/users", true, userHandler.Register},
		{fiber.MethodDelete, "/users/:id", true, userHandler.Delete},
		{fiber.MethodPut, "/users/:id/reset-password", true, userHandler.ResetPassword},
	}
}

// Router registra las rutas del gateway aplicando la tabla de políticas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token no vencido)
	protected := api.Group("/", AuthMiddleware())
	requireAdmin := RequireAdmin()
	for _, r := range routeTable(deps) {
		if r.Admin {
			protected.Add(r.Method, r.Path, requireAdmin, r.Handler)
			continue
		}
		protected.Add(r.Method, r.Path, r.Handler)
	}
}
