package main

import (
	"context"
	"flag"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
	infradoc "github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/document"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/postgres"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/seed"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/sqlite"
	"github.com/martin-jeremy/linkedin-sql-nosql/pkg/config"
	"github.com/martin-jeremy/linkedin-sql-nosql/pkg/logger"
)

// Pobla el almacén relacional configurado con el catálogo de la tienda y un
// conjunto de ventas (fijo o aleatorio), y escribe el documento anidado
// equivalente en el archivo JSON configurado.
func main() {
	random := flag.Bool("random", false, "generar ventas aleatorias en lugar del conjunto fijo")
	sales := flag.Int("sales", 200, "cantidad de ventas aleatorias (solo con -random)")
	rngSeed := flag.Int64("seed", 42, "semilla del generador aleatorio (solo con -random)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	var rows *repository.ShopRows
	if *random {
		rows = seed.Random(*sales, *rngSeed)
		log.Info().Int("sales", *sales).Int64("seed", *rngSeed).Msg("generando ventas aleatorias")
	} else {
		rows = seed.Demo()
		log.Info().Msg("usando el conjunto fijo de ventas")
	}

	if err := store.InsertRows(ctx, rows); err != nil {
		log.Fatal().Err(err).Msg("insertar filas")
	}
	log.Info().
		Int("categories", len(rows.Categories)).
		Int("products", len(rows.Products)).
		Int("sales", len(rows.Sales)).
		Int("details", len(rows.Details)).
		Str("driver", cfg.Store.Driver).
		Msg("almacén relacional poblado")

	dump, err := store.FetchAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("volcar filas")
	}

	docStore := infradoc.NewStore(cfg.Store.DocumentPath)
	if err := docStore.Save(infradoc.Convert(dump)); err != nil {
		log.Fatal().Err(err).Msg("guardar documento")
	}
	log.Info().Str("path", cfg.Store.DocumentPath).Msg("documento anidado guardado")
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
