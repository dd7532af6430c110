package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/usecase"
)

func TestBenchmark_ReporteCompleto(t *testing.T) {
	// Las dos "implementaciones" son el mismo motor: aquí solo importa la
	// mecánica del benchmark, no la comparación real.
	engine := usecase.NewAnalyticsUseCase(shopDoc(t))
	params := usecase.BenchmarkParams{
		Date:    date(t, "2025-01-03"),
		Product: "Laptop",
		Year:    2025,
		Month:   1,
	}

	report, err := usecase.NewBenchmarkUseCase(engine, engine, params).Run(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Runs)
	require.Len(t, report.Operations, 5)

	names := make([]string, 0, len(report.Operations))
	for _, op := range report.Operations {
		names = append(names, op.Operation)
		assert.GreaterOrEqual(t, op.SQL.Mean, 0.0)
		assert.GreaterOrEqual(t, op.Document.Mean, 0.0)
		assert.LessOrEqual(t, op.SQL.Min, op.SQL.Max)
		assert.LessOrEqual(t, op.Document.Min, op.Document.Max)
		assert.Contains(t, []string{"sql", "document"}, op.Faster)
	}
	assert.Equal(t, []string{
		"category_sales", "product_revenue", "daily_sales", "product_monthly", "sales_summary",
	}, names)
}

func TestBenchmark_ProductoInexistenteAborta(t *testing.T) {
	engine := usecase.NewAnalyticsUseCase(shopDoc(t))
	params := usecase.BenchmarkParams{
		Date:    date(t, "2025-01-03"),
		Product: "NoExiste",
		Year:    2025,
		Month:   1,
	}

	report, err := usecase.NewBenchmarkUseCase(engine, engine, params).Run(context.Background(), 2)
	require.Error(t, err, "una consulta fallida invalida el benchmark")
	assert.Nil(t, report)
}

func TestBenchmark_RunsNoPositivoSeNormaliza(t *testing.T) {
	engine := usecase.NewAnalyticsUseCase(shopDoc(t))

	report, err := usecase.NewBenchmarkUseCase(engine, engine, usecase.BenchmarkParams{
		Date:    date(t, "2025-01-03"),
		Product: "Laptop",
		Year:    2025,
		Month:   1,
	}).Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Runs)
}
