package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/dto"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/entity"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
)

var _ repository.ShopAnalytics = (*AnalyticsUseCase)(nil)

// AnalyticsUseCase es el motor de consultas sobre el documento anidado: cada
// operación es un recorrido completo categorías → productos → ventas que
// filtra, agrega u ordena, produciendo filas planas equivalentes a la consulta
// relacional correspondiente. No hay planificador ni índices secundarios: la
// semántica de join/group/sort se reimplementa a mano en cada recorrido.
//
// El documento se recibe una vez en la construcción y nunca se muta; todas las
// consultas son lecturas puras, seguras frente a ejecución concurrente.
type AnalyticsUseCase struct {
	doc *entity.Document
}

// NewAnalyticsUseCase construye el motor sobre un documento ya poblado.
func NewAnalyticsUseCase(doc *entity.Document) *AnalyticsUseCase {
	return &AnalyticsUseCase{doc: doc}
}

// TotalSalesByCategory suma las cantidades de todas las ventas de todos los
// productos de cada categoría. Equivalente a:
//
//	SELECT SUM(sd.quantity), cat.name
//	FROM SaleDetails sd
//	LEFT JOIN Products pr   ON sd.product_id = pr.id
//	LEFT JOIN Categories cat ON pr.category_id = cat.id
//	GROUP BY cat.name
//
// Semántica de left join: una categoría sin ventas aparece con total 0.
// El orden de salida es el orden de las categorías en el documento.
func (uc *AnalyticsUseCase) TotalSalesByCategory(ctx context.Context) ([]dto.CategorySalesDTO, error) {
	rows := make([]dto.CategorySalesDTO, 0, len(uc.doc.Categories))
	for _, cat := range uc.doc.Categories {
		total := 0
		for _, p := range cat.Products {
			total += entity.TotalQuantity(p.Sales)
		}
		rows = append(rows, dto.CategorySalesDTO{
			Category:      cat.Name,
			TotalQuantity: total,
		})
	}
	return rows, nil
}

// TotalPriceByProduct calcula unidades vendidas e ingreso total por producto.
// Equivalente a:
//
//	SELECT pd.name, pd.price, COALESCE(SUM(sd.quantity), 0) AS total_saled,
//	       pd.price * total_saled AS total_earned
//	FROM Products pd
//	LEFT JOIN SaleDetails sd ON pd.id = sd.product_id
//	GROUP BY pd.name, pd.price
//	ORDER BY total_earned DESC
//
// Los productos sin ventas aparecen con total e ingreso 0. El orden es por
// ingreso descendente; los empates conservan el orden de recorrido del
// documento (ordenación estable, la consulta de referencia no define otro).
func (uc *AnalyticsUseCase) TotalPriceByProduct(ctx context.Context) ([]dto.ProductRevenueDTO, error) {
	rows := make([]dto.ProductRevenueDTO, 0)
	for _, cat := range uc.doc.Categories {
		for _, p := range cat.Products {
			total := entity.TotalQuantity(p.Sales)
			rows = append(rows, dto.ProductRevenueDTO{
				Product:       p.Name,
				UnitPrice:     p.Price,
				TotalQuantity: total,
				TotalRevenue:  p.Price.Mul(decimal.NewFromInt(int64(total))),
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	return rows, nil
}

// SalesByDate devuelve cada línea de venta del documento ocurrida en la fecha
// exacta dada, expandida con su categoría y producto. A diferencia de las dos
// consultas anteriores, aquí la semántica es de inner join: los productos y
// categorías sin venta en esa fecha no aparecen. Una fecha sin ventas devuelve
// la secuencia vacía, no un error.
//
// Orden de salida: categoría ascendente y, dentro de cada categoría, precio
// total descendente.
func (uc *AnalyticsUseCase) SalesByDate(ctx context.Context, date time.Time) ([]dto.DailySaleDTO, error) {
	day := entity.Day(date)
	rows := []dto.DailySaleDTO{}
	for _, cat := range uc.doc.Categories {
		for _, p := range cat.Products {
			for _, s := range p.Sales {
				if !s.Date.Equal(day) {
					continue
				}
				rows = append(rows, dto.DailySaleDTO{
					Category:   cat.Name,
					Product:    p.Name,
					UnitPrice:  p.Price,
					Quantity:   s.Quantity,
					TotalPrice: p.Price.Mul(decimal.NewFromInt(int64(s.Quantity))),
					Date:       s.Date.Format(entity.DateLayout),
				})
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].TotalPrice.GreaterThan(rows[j].TotalPrice)
	})
	return rows, nil
}

// ProductSalesByMonth devuelve las ventas del producto cuyo Date cae dentro del
// mes de calendario (año y mes del registro, no una ventana de 31 días),
// ordenadas por fecha ascendente.
//
// Falla con domain.ErrNotFound si el producto no existe en el documento; un
// producto existente sin ventas en ese mes devuelve la secuencia vacía.
func (uc *AnalyticsUseCase) ProductSalesByMonth(ctx context.Context, product string, year, month int) ([]dto.MonthlySaleDTO, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("mes %d fuera de rango: %w", month, domain.ErrInvalidInput)
	}
	p, _, err := uc.doc.Product(product)
	if err != nil {
		return nil, err
	}

	rows := []dto.MonthlySaleDTO{}
	for _, s := range p.Sales {
		if s.Date.Year() != year || int(s.Date.Month()) != month {
			continue
		}
		rows = append(rows, dto.MonthlySaleDTO{
			Date:       s.Date.Format(entity.DateLayout),
			Quantity:   s.Quantity,
			UnitPrice:  p.Price,
			TotalPrice: p.Price.Mul(decimal.NewFromInt(int64(s.Quantity))),
		})
	}
	// Las fechas ISO ordenan lexicográficamente igual que cronológicamente.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

// SalesSummary calcula en un solo recorrido los totales por categoría y por
// producto, equivalente al ROLLUP/UNION de ambos niveles sin fila de gran
// total. Los totales de categoría salen en orden de recorrido; los de producto
// ordenados por cantidad descendente con desempate por nombre ascendente (este
// desempate sí es parte del contrato, a diferencia de TotalPriceByProduct).
func (uc *AnalyticsUseCase) SalesSummary(ctx context.Context) (*dto.SalesSummaryDTO, error) {
	categories := make([]dto.CategorySalesDTO, 0, len(uc.doc.Categories))
	products := []dto.ProductTotalDTO{}

	for _, cat := range uc.doc.Categories {
		catTotal := 0
		for _, p := range cat.Products {
			total := entity.TotalQuantity(p.Sales)
			catTotal += total
			products = append(products, dto.ProductTotalDTO{
				Product:       p.Name,
				TotalQuantity: total,
			})
		}
		categories = append(categories, dto.CategorySalesDTO{
			Category:      cat.Name,
			TotalQuantity: catTotal,
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].TotalQuantity != products[j].TotalQuantity {
			return products[i].TotalQuantity > products[j].TotalQuantity
		}
		return products[i].Product < products[j].Product
	})

	return &dto.SalesSummaryDTO{
		Categories: categories,
		Products:   products,
	}, nil
}
