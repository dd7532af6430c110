package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/dto"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/entity"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
)

var _ repository.ShopStore = (*Store)(nil)

// Las cinco consultas analíticas en SQL. Son la contraparte relacional del
// motor de documento: misma semántica, mismas filas, mismo orden. Los importes
// (price × quantity) se calculan en Go con decimal a partir de las columnas
// crudas, para que ambas implementaciones hagan la misma aritmética.

// TotalSalesByCategory agrega unidades por categoría con left join: las
// categorías sin ventas salen con 0. El ORDER BY cat.id reproduce el orden de
// inserción, que es el orden de recorrido del documento.
func (s *Store) TotalSalesByCategory(ctx context.Context) ([]dto.CategorySalesDTO, error) {
	const query = `
	SELECT cat.name, COALESCE(SUM(sd.quantity), 0) AS total_quantity
	FROM Categories cat
	LEFT JOIN Products pr    ON pr.category_id = cat.id
	LEFT JOIN SaleDetails sd ON sd.product_id  = pr.id
	GROUP BY cat.id, cat.name
	ORDER BY cat.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("shop.TotalSalesByCategory: %w", err)
	}
	defer rows.Close()

	results := make([]dto.CategorySalesDTO, 0)
	for rows.Next() {
		var row dto.CategorySalesDTO
		if err := rows.Scan(&row.Category, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("shop.TotalSalesByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TotalPriceByProduct devuelve una fila por producto (left join: sin ventas ⇒
// total 0) ordenadas por ingreso descendente; el desempate por pd.id conserva
// el orden de inserción, igual que la ordenación estable del motor de documento.
func (s *Store) TotalPriceByProduct(ctx context.Context) ([]dto.ProductRevenueDTO, error) {
	const query = `
	SELECT pd.name, pd.price, COALESCE(SUM(sd.quantity), 0) AS total_saled
	FROM Products pd
	LEFT JOIN SaleDetails sd ON sd.product_id = pd.id
	GROUP BY pd.id, pd.name, pd.price
	ORDER BY pd.price * COALESCE(SUM(sd.quantity), 0) DESC, pd.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("shop.TotalPriceByProduct: %w", err)
	}
	defer rows.Close()

	results := make([]dto.ProductRevenueDTO, 0)
	for rows.Next() {
		var (
			row   dto.ProductRevenueDTO
			price float64
		)
		if err := rows.Scan(&row.Product, &price, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("shop.TotalPriceByProduct scan: %w", err)
		}
		row.UnitPrice = decimal.NewFromFloat(price)
		row.TotalRevenue = row.UnitPrice.Mul(decimal.NewFromInt(int64(row.TotalQuantity)))
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesByDate devuelve las líneas de venta de la fecha exacta. Aquí el join es
// interno: solo aparecen productos con venta ese día. Fecha sin ventas ⇒ vacío.
func (s *Store) SalesByDate(ctx context.Context, date time.Time) ([]dto.DailySaleDTO, error) {
	const query = `
	SELECT cat.name, pd.name, pd.price, sd.quantity, sl.date
	FROM Categories cat
	JOIN Products pd    ON pd.category_id = cat.id
	JOIN SaleDetails sd ON sd.product_id  = pd.id
	JOIN Sales sl       ON sl.id          = sd.sale_id
	WHERE sl.date = ?
	ORDER BY cat.name ASC, pd.price * sd.quantity DESC`

	rows, err := s.db.QueryContext(ctx, query, entity.Day(date).Format(entity.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("shop.SalesByDate: %w", err)
	}
	defer rows.Close()

	results := make([]dto.DailySaleDTO, 0)
	for rows.Next() {
		var (
			row   dto.DailySaleDTO
			price float64
		)
		if err := rows.Scan(&row.Category, &row.Product, &price, &row.Quantity, &row.Date); err != nil {
			return nil, fmt.Errorf("shop.SalesByDate scan: %w", err)
		}
		row.UnitPrice = decimal.NewFromFloat(price)
		row.TotalPrice = row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Quantity)))
		results = append(results, row)
	}
	return results, rows.Err()
}

// ProductSalesByMonth devuelve las ventas del producto dentro del mes de
// calendario. El producto se verifica primero: nombre desconocido ⇒
// domain.ErrNotFound; existente pero sin ventas en el mes ⇒ secuencia vacía.
func (s *Store) ProductSalesByMonth(ctx context.Context, product string, year, month int) ([]dto.MonthlySaleDTO, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("mes %d fuera de rango: %w", month, domain.ErrInvalidInput)
	}

	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM Products WHERE name = ?`, product).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("shop.ProductSalesByMonth existencia: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("producto %q: %w", product, domain.ErrNotFound)
	}

	// Primer y último día del mes; las fechas ISO en TEXT comparan bien con BETWEEN.
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	const query = `
	SELECT sl.date, sd.quantity, pd.price
	FROM Products pd
	JOIN SaleDetails sd ON sd.product_id = pd.id
	JOIN Sales sl       ON sl.id         = sd.sale_id
	WHERE pd.name = ? AND sl.date BETWEEN ? AND ?
	ORDER BY sl.date ASC, sd.id`

	rows, err := s.db.QueryContext(ctx, query,
		product, first.Format(entity.DateLayout), last.Format(entity.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("shop.ProductSalesByMonth: %w", err)
	}
	defer rows.Close()

	results := make([]dto.MonthlySaleDTO, 0)
	for rows.Next() {
		var (
			row   dto.MonthlySaleDTO
			price float64
		)
		if err := rows.Scan(&row.Date, &row.Quantity, &price); err != nil {
			return nil, fmt.Errorf("shop.ProductSalesByMonth scan: %w", err)
		}
		row.UnitPrice = decimal.NewFromFloat(price)
		row.TotalPrice = row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Quantity)))
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesSummary combina el total por categoría (orden de inserción) con el total
// por producto (cantidad descendente, nombre ascendente), como haría un
// ROLLUP/UNION parcial de ambos niveles.
func (s *Store) SalesSummary(ctx context.Context) (*dto.SalesSummaryDTO, error) {
	categories, err := s.TotalSalesByCategory(ctx)
	if err != nil {
		return nil, err
	}

	const query = `
	SELECT pd.name, COALESCE(SUM(sd.quantity), 0) AS total_quantity
	FROM Products pd
	LEFT JOIN SaleDetails sd ON sd.product_id = pd.id
	GROUP BY pd.id, pd.name
	ORDER BY total_quantity DESC, pd.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("shop.SalesSummary: %w", err)
	}
	defer rows.Close()

	products := make([]dto.ProductTotalDTO, 0)
	for rows.Next() {
		var row dto.ProductTotalDTO
		if err := rows.Scan(&row.Product, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("shop.SalesSummary scan: %w", err)
		}
		products = append(products, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &dto.SalesSummaryDTO{Categories: categories, Products: products}, nil
}

// FetchAll vuelca las cuatro tablas en orden físico (id ascendente) para que el
// conversor construya el documento anidado.
func (s *Store) FetchAll(ctx context.Context) (*repository.ShopRows, error) {
	out := &repository.ShopRows{}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, COALESCE(description, '') FROM Categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("shop.FetchAll categorías: %w", err)
	}
	for rows.Next() {
		var c repository.CategoryRow
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("shop.FetchAll categorías scan: %w", err)
		}
		out.Categories = append(out.Categories, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT id, name, COALESCE(description, ''), price, category_id FROM Products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("shop.FetchAll productos: %w", err)
	}
	for rows.Next() {
		var (
			p     repository.ProductRow
			price float64
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &price, &p.CategoryID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("shop.FetchAll productos scan: %w", err)
		}
		p.Price = decimal.NewFromFloat(price)
		out.Products = append(out.Products, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT id, date FROM Sales ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("shop.FetchAll ventas: %w", err)
	}
	for rows.Next() {
		var (
			sl      repository.SaleRow
			dateStr string
		)
		if err := rows.Scan(&sl.ID, &dateStr); err != nil {
			rows.Close()
			return nil, fmt.Errorf("shop.FetchAll ventas scan: %w", err)
		}
		if sl.Date, err = entity.ParseDate(dateStr); err != nil {
			rows.Close()
			return nil, fmt.Errorf("shop.FetchAll fecha %q: %w", dateStr, err)
		}
		out.Sales = append(out.Sales, sl)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT id, sale_id, product_id, quantity FROM SaleDetails ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("shop.FetchAll líneas: %w", err)
	}
	for rows.Next() {
		var d repository.SaleDetailRow
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.Quantity); err != nil {
			rows.Close()
			return nil, fmt.Errorf("shop.FetchAll líneas scan: %w", err)
		}
		out.Details = append(out.Details, d)
	}
	rows.Close()
	return out, rows.Err()
}
