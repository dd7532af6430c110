package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/usecase"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/document"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/seed"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/infrastructure/sqlite"
)

func openSeeded(t *testing.T, rows *repository.ShopRows) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(sqlite.Config{Path: filepath.Join(t.TempDir(), "shop.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	require.NoError(t, store.InitSchema(ctx))
	require.NoError(t, store.InsertRows(ctx, rows))
	return store
}

// engineFor construye el motor de documento sobre el mismo contenido del
// almacén, pasando por el volcado y el conversor, igual que en producción.
func engineFor(t *testing.T, store *sqlite.Store) *usecase.AnalyticsUseCase {
	t.Helper()
	rows, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	return usecase.NewAnalyticsUseCase(document.Convert(rows))
}

// ──────────────────────────────────────────────────────────────────────────────
// Equivalencia SQL ↔ documento sobre el juego fijo (sin empates de ingreso:
// el orden es comparable fila a fila).
// ──────────────────────────────────────────────────────────────────────────────

func TestEquivalencia_JuegoFijo(t *testing.T) {
	store := openSeeded(t, seed.Demo())
	engine := engineFor(t, store)
	ctx := context.Background()

	t.Run("TotalSalesByCategory", func(t *testing.T) {
		fromSQL, err := store.TotalSalesByCategory(ctx)
		require.NoError(t, err)
		fromDoc, err := engine.TotalSalesByCategory(ctx)
		require.NoError(t, err)
		assert.Equal(t, fromDoc, fromSQL)
	})

	t.Run("TotalPriceByProduct", func(t *testing.T) {
		fromSQL, err := store.TotalPriceByProduct(ctx)
		require.NoError(t, err)
		fromDoc, err := engine.TotalPriceByProduct(ctx)
		require.NoError(t, err)
		assert.Equal(t, fromDoc, fromSQL)
	})

	t.Run("SalesByDate", func(t *testing.T) {
		for _, d := range []string{"2025-01-03", "2025-01-04", "2025-01-06", "2025-01-07", "2025-01-05"} {
			date, err := time.Parse("2006-01-02", d)
			require.NoError(t, err)

			fromSQL, err := store.SalesByDate(ctx, date)
			require.NoError(t, err)
			fromDoc, err := engine.SalesByDate(ctx, date)
			require.NoError(t, err)
			assert.Equal(t, fromDoc, fromSQL, "fecha %s", d)
		}
	})

	t.Run("ProductSalesByMonth", func(t *testing.T) {
		for _, product := range []string{"Laptop", "Novel", "Data Cookbook"} {
			fromSQL, err := store.ProductSalesByMonth(ctx, product, 2025, 1)
			require.NoError(t, err)
			fromDoc, err := engine.ProductSalesByMonth(ctx, product, 2025, 1)
			require.NoError(t, err)
			assert.Equal(t, fromDoc, fromSQL, "producto %s", product)
		}
	})

	t.Run("SalesSummary", func(t *testing.T) {
		fromSQL, err := store.SalesSummary(ctx)
		require.NoError(t, err)
		fromDoc, err := engine.SalesSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, fromDoc, fromSQL)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Equivalencia sobre el juego aleatorio. Con empates de ingreso o de precio
// total las dos implementaciones pueden diferir solo en el orden relativo de
// las filas empatadas, así que aquí se compara el conjunto y se verifican las
// leyes de orden aparte.
// ──────────────────────────────────────────────────────────────────────────────

func TestEquivalencia_JuegoAleatorio(t *testing.T) {
	store := openSeeded(t, seed.Random(150, 42))
	engine := engineFor(t, store)
	ctx := context.Background()

	t.Run("TotalSalesByCategory", func(t *testing.T) {
		fromSQL, err := store.TotalSalesByCategory(ctx)
		require.NoError(t, err)
		fromDoc, err := engine.TotalSalesByCategory(ctx)
		require.NoError(t, err)
		assert.Equal(t, fromDoc, fromSQL)
	})

	t.Run("TotalPriceByProduct", func(t *testing.T) {
		fromSQL, err := store.TotalPriceByProduct(ctx)
		require.NoError(t, err)
		fromDoc, err := engine.TotalPriceByProduct(ctx)
		require.NoError(t, err)

		assert.ElementsMatch(t, fromDoc, fromSQL)
		for i := 1; i < len(fromSQL); i++ {
			assert.False(t, fromSQL[i].TotalRevenue.GreaterThan(fromSQL[i-1].TotalRevenue))
		}
		for i := 1; i < len(fromDoc); i++ {
			assert.False(t, fromDoc[i].TotalRevenue.GreaterThan(fromDoc[i-1].TotalRevenue))
		}
	})

	t.Run("SalesByDate", func(t *testing.T) {
		date, _ := time.Parse("2006-01-02", "2024-08-10")

		fromSQL, err := store.SalesByDate(ctx, date)
		require.NoError(t, err)
		fromDoc, err := engine.SalesByDate(ctx, date)
		require.NoError(t, err)

		assert.ElementsMatch(t, fromDoc, fromSQL)
		for i := 1; i < len(fromSQL); i++ {
			if fromSQL[i].Category == fromSQL[i-1].Category {
				assert.False(t, fromSQL[i].TotalPrice.GreaterThan(fromSQL[i-1].TotalPrice))
			} else {
				assert.Less(t, fromSQL[i-1].Category, fromSQL[i].Category)
			}
		}
	})

	t.Run("ProductSalesByMonth", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			fromSQL, err := store.ProductSalesByMonth(ctx, "Laptop", 2024, month)
			require.NoError(t, err)
			fromDoc, err := engine.ProductSalesByMonth(ctx, "Laptop", 2024, month)
			require.NoError(t, err)
			assert.Equal(t, fromDoc, fromSQL, "mes %d", month)
		}
	})

	t.Run("SalesSummary", func(t *testing.T) {
		fromSQL, err := store.SalesSummary(ctx)
		require.NoError(t, err)
		fromDoc, err := engine.SalesSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, fromDoc, fromSQL)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Taxonomía de errores: el almacén SQL responde igual que el motor de documento.
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_ProductoInexistente(t *testing.T) {
	store := openSeeded(t, seed.Demo())

	_, err := store.ProductSalesByMonth(context.Background(), "NoExiste", 2025, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_MesFueraDeRango(t *testing.T) {
	store := openSeeded(t, seed.Demo())

	for _, month := range []int{0, 13} {
		_, err := store.ProductSalesByMonth(context.Background(), "Laptop", 2025, month)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	}
}

func TestStore_FechaSinVentas(t *testing.T) {
	store := openSeeded(t, seed.Demo())

	rows, err := store.SalesByDate(context.Background(), time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_FetchAllConservaOrdenFisico(t *testing.T) {
	demo := seed.Demo()
	store := openSeeded(t, demo)

	dump, err := store.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, dump.Categories, len(demo.Categories))
	for i, c := range demo.Categories {
		assert.Equal(t, c.ID, dump.Categories[i].ID)
		assert.Equal(t, c.Name, dump.Categories[i].Name)
	}
	require.Len(t, dump.Products, len(demo.Products))
	for i, p := range demo.Products {
		assert.Equal(t, p.ID, dump.Products[i].ID)
		assert.True(t, p.Price.Equal(dump.Products[i].Price),
			"precio de %s: %s vs %s", p.Name, p.Price, dump.Products[i].Price)
	}
	require.Len(t, dump.Sales, len(demo.Sales))
	require.Len(t, dump.Details, len(demo.Details))
}
