package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/auth"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/movement"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/application/usecase"
	"github.com/tomasesquivelgc/blend-vinos-gateway/internal/infrastructure/blendapi"
	httpRouter "github.com/tomasesquivelgc/blend-vinos-gateway/internal/interfaces/http"
	"github.com/tomasesquivelgc/blend-vinos-gateway/pkg/config"
	"github.com/tomasesquivelgc/blend-vinos-gateway/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando gateway")

	api := blendapi.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	store := movement.NewStore(api, api, cfg.Session.TTL, log)
	store.StartJanitor()
	defer store.StopJanitor()

	authUC := auth.NewUseCase(api)
	wineUC := usecase.NewWineUseCase(api)
	userUC := usecase.NewUserUseCase(api)
	historyUC := usecase.NewHistoryUseCase(api)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Blend Vinos Gateway",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		WineUC:    wineUC,
		UserUC:    userUC,
		HistoryUC: historyUC,
		Store:     store,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("gateway detenido")
}
