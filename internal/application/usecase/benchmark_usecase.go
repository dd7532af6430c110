package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/dto"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/entity"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
)

// BenchmarkParams parámetros fijos con los que se cronometra cada consulta.
type BenchmarkParams struct {
	Date    time.Time // fecha para SalesByDate
	Product string    // producto para ProductSalesByMonth
	Year    int
	Month   int
}

// DefaultBenchmarkParams devuelve los parámetros del juego de datos aleatorio
// (ventas repartidas en 2024, producto del catálogo de demostración).
func DefaultBenchmarkParams() BenchmarkParams {
	date, _ := entity.ParseDate("2024-08-10")
	return BenchmarkParams{
		Date:    date,
		Product: "Laptop",
		Year:    2024,
		Month:   8,
	}
}

// BenchmarkUseCase cronometra las cinco consultas analíticas contra las dos
// implementaciones (relacional y documento) y resume las mediciones. Los
// resultados de las consultas se descartan: aquí solo interesa el tiempo; la
// igualdad de resultados la cubren los tests de equivalencia.
type BenchmarkUseCase struct {
	relational repository.ShopAnalytics
	document   repository.ShopAnalytics
	params     BenchmarkParams
}

// NewBenchmarkUseCase construye el benchmark sobre ambas implementaciones.
func NewBenchmarkUseCase(relational, document repository.ShopAnalytics, params BenchmarkParams) *BenchmarkUseCase {
	return &BenchmarkUseCase{relational: relational, document: document, params: params}
}

// Run ejecuta cada operación `runs` veces por implementación y devuelve el
// reporte comparativo. Un error de cualquier consulta aborta el benchmark: un
// tiempo medido sobre una consulta fallida no significa nada.
func (uc *BenchmarkUseCase) Run(ctx context.Context, runs int) (*dto.BenchmarkReportDTO, error) {
	if runs <= 0 {
		runs = 1
	}

	type operation struct {
		name string
		call func(ctx context.Context, repo repository.ShopAnalytics) error
	}
	operations := []operation{
		{"category_sales", func(ctx context.Context, repo repository.ShopAnalytics) error {
			_, err := repo.TotalSalesByCategory(ctx)
			return err
		}},
		{"product_revenue", func(ctx context.Context, repo repository.ShopAnalytics) error {
			_, err := repo.TotalPriceByProduct(ctx)
			return err
		}},
		{"daily_sales", func(ctx context.Context, repo repository.ShopAnalytics) error {
			_, err := repo.SalesByDate(ctx, uc.params.Date)
			return err
		}},
		{"product_monthly", func(ctx context.Context, repo repository.ShopAnalytics) error {
			_, err := repo.ProductSalesByMonth(ctx, uc.params.Product, uc.params.Year, uc.params.Month)
			return err
		}},
		{"sales_summary", func(ctx context.Context, repo repository.ShopAnalytics) error {
			_, err := repo.SalesSummary(ctx)
			return err
		}},
	}

	report := &dto.BenchmarkReportDTO{Runs: runs}
	for _, op := range operations {
		sqlStats, err := uc.timeOperation(ctx, uc.relational, runs, op.call)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s (sql): %w", op.name, err)
		}
		docStats, err := uc.timeOperation(ctx, uc.document, runs, op.call)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s (document): %w", op.name, err)
		}

		comparison := dto.OperationComparisonDTO{
			Operation: op.name,
			SQL:       sqlStats,
			Document:  docStats,
			Faster:    "sql",
		}
		if sqlStats.Mean > 0 {
			comparison.DiffPct = (docStats.Mean - sqlStats.Mean) / sqlStats.Mean * 100
		}
		if docStats.Mean < sqlStats.Mean {
			comparison.Faster = "document"
		}
		report.Operations = append(report.Operations, comparison)
	}
	return report, nil
}

func (uc *BenchmarkUseCase) timeOperation(
	ctx context.Context,
	repo repository.ShopAnalytics,
	runs int,
	call func(ctx context.Context, repo repository.ShopAnalytics) error,
) (dto.OperationStatsDTO, error) {
	samples := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		start := time.Now()
		if err := call(ctx, repo); err != nil {
			return dto.OperationStatsDTO{}, err
		}
		samples = append(samples, time.Since(start).Seconds())
	}
	return summarize(samples), nil
}

// summarize calcula media, mediana, desviación estándar muestral y rango.
func summarize(samples []float64) dto.OperationStatsDTO {
	stats := dto.OperationStatsDTO{Min: samples[0], Max: samples[0]}

	var sum float64
	for _, s := range samples {
		sum += s
		if s < stats.Min {
			stats.Min = s
		}
		if s > stats.Max {
			stats.Max = s
		}
	}
	stats.Mean = sum / float64(len(samples))

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		stats.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		stats.Median = sorted[mid]
	}

	if len(samples) > 1 {
		var sq float64
		for _, s := range samples {
			d := s - stats.Mean
			sq += d * d
		}
		stats.StdDev = math.Sqrt(sq / float64(len(samples)-1))
	}
	return stats
}
