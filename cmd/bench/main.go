package main

import (
	"context"
	"flag"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/usecase"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
	infradoc "github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/document"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/postgres"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/sqlite"
	"github.com/martin-jeremy/linkedin-sql-nosql/pkg/config"
	"github.com/martin-jeremy/linkedin-sql-nosql/pkg/logger"
)

// Cronometra las cinco consultas analíticas contra el almacén relacional y el
// motor de documento sobre los mismos datos, y reporta el resumen comparativo.
func main() {
	runsFlag := flag.Int("runs", 0, "repeticiones por consulta (0 usa BENCH_RUNS)")
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

	doc, err := infradoc.NewStore(cfg.Store.DocumentPath).Load()
	if err != nil {
		log.Info().Err(err).Msg("documento no disponible, convirtiendo desde el almacén")
		rows, err := store.FetchAll(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("volcar filas")
		}
		doc = infradoc.Convert(rows)
	}
	engine := usecase.NewAnalyticsUseCase(doc)

	runs := cfg.Bench.Runs
	if *runsFlag > 0 {
		runs = *runsFlag
	}

	log.Info().
		Str("driver", cfg.Store.Driver).
		Int("runs", runs).
		Msg("iniciando benchmark")

	report, err := usecase.NewBenchmarkUseCase(store, engine, usecase.DefaultBenchmarkParams()).Run(ctx, runs)
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark")
	}

	for _, op := range report.Operations {
		log.Info().
			Str("operation", op.Operation).
			Float64("sql_mean_s", op.SQL.Mean).
			Float64("sql_median_s", op.SQL.Median).
			Float64("sql_stddev_s", op.SQL.StdDev).
			Float64("doc_mean_s", op.Document.Mean).
			Float64("doc_median_s", op.Document.Median).
			Float64("doc_stddev_s", op.Document.StdDev).
			Float64("diff_pct", op.DiffPct).
			Str("faster", op.Faster).
			Msg("resultado")
	}
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
