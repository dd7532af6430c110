package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/usecase"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/entity"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
	infradoc "github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/document"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/postgres"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/sqlite"
	httpRouter "github.com/martin-jeremy/linkedin-sql-nosql/internal/interfaces/http"
	"github.com/martin-jeremy/linkedin-sql-nosql/pkg/config"
	"github.com/martin-jeremy/linkedin-sql-nosql/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()

	doc, err := loadDocument(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar documento")
	}
	analyticsUC := usecase.NewAnalyticsUseCase(doc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Analytics: analyticsUC,
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

// loadDocument obtiene el documento anidado: del archivo JSON si existe, y si
// no, volcando y convirtiendo el almacén relacional configurado.
func loadDocument(ctx context.Context, cfg *config.Config, log *logger.Logger) (*entity.Document, error) {
	docStore := infradoc.NewStore(cfg.Store.DocumentPath)
	if doc, err := docStore.Load(); err == nil {
		log.Info().Str("path", cfg.Store.DocumentPath).Msg("documento cargado desde archivo")
		return doc, nil
	}

	log.Info().
		Str("driver", cfg.Store.Driver).
		Msg("documento no disponible, convirtiendo desde el almacén relacional")

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	rows, err := store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return infradoc.Convert(rows), nil
}

func openStore(ctx context.Context, cfg *config.Config) (repository.ShopStore, error) {
	if cfg.Store.Driver == "postgres" {
		pool, err := postgres.NewPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(pool), nil
	}
	return sqlite.Open(sqlite.Config{Path: cfg.Store.SQLitePath})
}
