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

	"github.com/induscore/inventario-panel/internal/application/auth"
	"github.com/induscore/inventario-panel/internal/application/session"
	"github.com/induscore/inventario-panel/internal/application/usecase"
	"github.com/induscore/inventario-panel/internal/infrastructure/localstore"
	"github.com/induscore/inventario-panel/internal/infrastructure/restapi"
	httpRouter "github.com/induscore/inventario-panel/internal/interfaces/http"
	"github.com/induscore/inventario-panel/pkg/config"
	"github.com/induscore/inventario-panel/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("upstream", cfg.API.BaseURL).
		Msg("iniciando panel")

	client := restapi.NewClient(cfg.API, log)

	sessions, err := session.NewStore(cfg.Storage.SessionFile)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir archivo de sesiones")
	}
	flags, err := localstore.NewFlagStore(cfg.Storage.FlagsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir archivo de banderas")
	}

	authUC := auth.NewAuthUseCase(client, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	productsUC := usecase.NewProductsUseCase(client, client, flags)
	suppliersUC := usecase.NewSuppliersUseCase(client)
	associationsUC := usecase.NewAssociationsUseCase(client, client, client)
	purchaseUC := usecase.NewPurchaseOrdersUseCase(client, client, client)
	movementsUC := usecase.NewMovementsUseCase(client, client, client)
	stockUC := usecase.NewStockUseCase(client)
	pricesUC := usecase.NewPricesUseCase(client, client)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Panel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductsUC:     productsUC,
		SuppliersUC:    suppliersUC,
		AssociationsUC: associationsUC,
		PurchaseUC:     purchaseUC,
		MovementsUC:    movementsUC,
		StockUC:        stockUC,
		PricesUC:       pricesUC,
		JWTSecret:      cfg.JWT.Secret,
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

	log.Info().Msg("panel detenido")
}
