package repository

import (
	"context"
	"time"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/dto"
)

// ShopAnalytics define las cinco consultas analíticas de solo lectura sobre la
// tienda. Hay dos implementaciones con la misma semántica fila a fila: el motor
// de recorrido sobre el documento anidado (usecase.AnalyticsUseCase) y el
// repositorio relacional (sqlite o postgres). Los tests de equivalencia y el
// benchmark trabajan contra esta interfaz.
//
// Ninguna implementación muta datos; cada llamada construye filas nuevas.
type ShopAnalytics interface {
	// TotalSalesByCategory devuelve el total de unidades vendidas por categoría,
	// en el orden en que las categorías aparecen en el documento. Las categorías
	// sin ventas aparecen con total 0.
	TotalSalesByCategory(ctx context.Context) ([]dto.CategorySalesDTO, error)

	// TotalPriceByProduct devuelve una fila por producto (incluidos los que no
	// tienen ventas) ordenadas por ingreso total descendente. Los empates
	// conservan el orden de recorrido (orden estable).
	TotalPriceByProduct(ctx context.Context) ([]dto.ProductRevenueDTO, error)

	// SalesByDate devuelve todas las líneas de venta de la fecha exacta dada,
	// ordenadas por categoría ascendente y, dentro de cada categoría, por precio
	// total descendente. Una fecha sin ventas devuelve la secuencia vacía.
	SalesByDate(ctx context.Context, date time.Time) ([]dto.DailySaleDTO, error)

	// ProductSalesByMonth devuelve las ventas del producto dentro del mes de
	// calendario indicado, ordenadas por fecha ascendente. Falla con
	// domain.ErrNotFound si el producto no existe y con domain.ErrInvalidInput
	// si month está fuera de 1-12. Un mes sin ventas devuelve la secuencia vacía.
	ProductSalesByMonth(ctx context.Context, product string, year, month int) ([]dto.MonthlySaleDTO, error)

	// SalesSummary devuelve los totales por categoría (orden de recorrido) y por
	// producto (cantidad descendente, nombre ascendente en empates) en un solo
	// resultado.
	SalesSummary(ctx context.Context) (*dto.SalesSummaryDTO, error)
}
