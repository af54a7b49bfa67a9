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

	"github.com/jhoicas/ledgerflow-api/internal/bootstrap"
	httpRouter "github.com/jhoicas/ledgerflow-api/internal/interfaces/http"
	"github.com/jhoicas/ledgerflow-api/pkg/config"
	"github.com/jhoicas/ledgerflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Ledger.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := bootstrap.OpenStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer store.Close()

	if cfg.Ledger.SeedPath != "" {
		snap, err := store.SeedFile(ctx, cfg.Ledger.SeedPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Ledger.SeedPath).Msg("seed")
		}
		log.Info().
			Int("customers", len(snap.Customers)).
			Int("transactions", len(snap.Transactions)).
			Msg("snapshot inicial cargado")
	}

	svc, err := bootstrap.NewServices(store, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("casos de uso")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Report.Timeout() + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.AccessLog(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LedgerFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": store.Backend})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:    svc.Customers,
		TransactionUC: svc.Transactions,
		BusinessUC:    svc.Business,
		ReportUC:      svc.Reports,
		ReportTimeout: cfg.Report.Timeout(),
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

	log.Info().Msg("aplicación detenida")
}
