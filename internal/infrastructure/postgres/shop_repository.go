package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/dto"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/entity"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
)

var _ repository.ShopStore = (*Store)(nil)

// Store almacén relacional de la tienda sobre PostgreSQL. Misma semántica de
// consulta que la variante SQLite; cambia el dialecto ($n, DATE, NUMERIC) y que
// los precios se escanean como decimal gracias al codec registrado en el pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el adaptador sobre un pool ya conectado.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// InitSchema crea las cuatro tablas del esquema normalizado si no existen.
func (s *Store) InitSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS Categories (
	  id INTEGER PRIMARY KEY,
	  name TEXT NOT NULL,
	  description TEXT
	);
	CREATE TABLE IF NOT EXISTS Products (
	  id INTEGER PRIMARY KEY,
	  name TEXT NOT NULL,
	  description TEXT,
	  price NUMERIC(12,2),
	  category_id INTEGER REFERENCES Categories(id)
	);
	CREATE TABLE IF NOT EXISTS Sales (
	  id INTEGER PRIMARY KEY,
	  date DATE
	);
	CREATE TABLE IF NOT EXISTS SaleDetails (
	  id INTEGER PRIMARY KEY,
	  sale_id INTEGER REFERENCES Sales(id),
	  product_id INTEGER REFERENCES Products(id),
	  quantity INTEGER
	);`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// InsertRows carga las filas normalizadas en una sola transacción.
func (s *Store) InsertRows(ctx context.Context, rows *repository.ShopRows) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("abrir transacción: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, c := range rows.Categories {
		if _, err := tx.Exec(ctx,
			`INSERT INTO Categories (id, name, description) VALUES ($1, $2, $3)`,
			c.ID, c.Name, c.Description); err != nil {
			return fmt.Errorf("insertar categoría %q: %w", c.Name, err)
		}
	}
	for _, p := range rows.Products {
		if _, err := tx.Exec(ctx,
			`INSERT INTO Products (id, name, description, price, category_id) VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.Name, p.Description, p.Price, p.CategoryID); err != nil {
			return fmt.Errorf("insertar producto %q: %w", p.Name, err)
		}
	}
	for _, sl := range rows.Sales {
		if _, err := tx.Exec(ctx,
			`INSERT INTO Sales (id, date) VALUES ($1, $2)`, sl.ID, sl.Date); err != nil {
			return fmt.Errorf("insertar venta %d: %w", sl.ID, err)
		}
	}
	for _, d := range rows.Details {
		if _, err := tx.Exec(ctx,
			`INSERT INTO SaleDetails (id, sale_id, product_id, quantity) VALUES ($1, $2, $3, $4)`,
			d.ID, d.SaleID, d.ProductID, d.Quantity); err != nil {
			return fmt.Errorf("insertar línea %d: %w", d.ID, err)
		}
	}
	return tx.Commit(ctx)
}

// TotalSalesByCategory agrega unidades por categoría (left join, categorías sin
// ventas con 0) en orden de inserción.
func (s *Store) TotalSalesByCategory(ctx context.Context) ([]dto.CategorySalesDTO, error) {
	const query = `
	SELECT cat.name, COALESCE(SUM(sd.quantity), 0)::INT AS total_quantity
	FROM Categories cat
	LEFT JOIN Products pr    ON pr.category_id = cat.id
	LEFT JOIN SaleDetails sd ON sd.product_id  = pr.id
	GROUP BY cat.id, cat.name
	ORDER BY cat.id`

	rows, err := s.pool.Query(ctx, query)
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

// TotalPriceByProduct devuelve una fila por producto ordenadas por ingreso
// descendente, con desempate por orden de inserción.
func (s *Store) TotalPriceByProduct(ctx context.Context) ([]dto.ProductRevenueDTO, error) {
	const query = `
	SELECT pd.name, pd.price, COALESCE(SUM(sd.quantity), 0)::INT AS total_saled
	FROM Products pd
	LEFT JOIN SaleDetails sd ON sd.product_id = pd.id
	GROUP BY pd.id, pd.name, pd.price
	ORDER BY pd.price * COALESCE(SUM(sd.quantity), 0) DESC, pd.id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("shop.TotalPriceByProduct: %w", err)
	}
	defer rows.Close()

	results := make([]dto.ProductRevenueDTO, 0)
	for rows.Next() {
		var row dto.ProductRevenueDTO
		if err := rows.Scan(&row.Product, &row.UnitPrice, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("shop.TotalPriceByProduct scan: %w", err)
		}
		row.TotalRevenue = row.UnitPrice.Mul(decimal.NewFromInt(int64(row.TotalQuantity)))
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesByDate devuelve las líneas de venta de la fecha exacta (inner join).
func (s *Store) SalesByDate(ctx context.Context, date time.Time) ([]dto.DailySaleDTO, error) {
	const query = `
	SELECT cat.name, pd.name, pd.price, sd.quantity, sl.date
	FROM Categories cat
	JOIN Products pd    ON pd.category_id = cat.id
	JOIN SaleDetails sd ON sd.product_id  = pd.id
	JOIN Sales sl       ON sl.id          = sd.sale_id
	WHERE sl.date = $1
	ORDER BY cat.name ASC, pd.price * sd.quantity DESC`

	rows, err := s.pool.Query(ctx, query, entity.Day(date))
	if err != nil {
		return nil, fmt.Errorf("shop.SalesByDate: %w", err)
	}
	defer rows.Close()

	results := make([]dto.DailySaleDTO, 0)
	for rows.Next() {
		var (
			row      dto.DailySaleDTO
			saleDate time.Time
		)
		if err := rows.Scan(&row.Category, &row.Product, &row.UnitPrice, &row.Quantity, &saleDate); err != nil {
			return nil, fmt.Errorf("shop.SalesByDate scan: %w", err)
		}
		row.TotalPrice = row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Quantity)))
		row.Date = saleDate.Format(entity.DateLayout)
		results = append(results, row)
	}
	return results, rows.Err()
}

// ProductSalesByMonth devuelve las ventas del producto dentro del mes de
// calendario; producto desconocido ⇒ domain.ErrNotFound.
func (s *Store) ProductSalesByMonth(ctx context.Context, product string, year, month int) ([]dto.MonthlySaleDTO, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("mes %d fuera de rango: %w", month, domain.ErrInvalidInput)
	}

	var exists int
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM Products WHERE name = $1`, product).Scan(&exists); err != nil {
		return nil, fmt.Errorf("shop.ProductSalesByMonth existencia: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("producto %q: %w", product, domain.ErrNotFound)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	const query = `
	SELECT sl.date, sd.quantity, pd.price
	FROM Products pd
	JOIN SaleDetails sd ON sd.product_id = pd.id
	JOIN Sales sl       ON sl.id         = sd.sale_id
	WHERE pd.name = $1 AND sl.date BETWEEN $2 AND $3
	ORDER BY sl.date ASC, sd.id`

	rows, err := s.pool.Query(ctx, query, product, first, last)
	if err != nil {
		return nil, fmt.Errorf("shop.ProductSalesByMonth: %w", err)
	}
	defer rows.Close()

	results := make([]dto.MonthlySaleDTO, 0)
	for rows.Next() {
		var (
			row      dto.MonthlySaleDTO
			saleDate time.Time
		)
		if err := rows.Scan(&saleDate, &row.Quantity, &row.UnitPrice); err != nil {
			return nil, fmt.Errorf("shop.ProductSalesByMonth scan: %w", err)
		}
		row.Date = saleDate.Format(entity.DateLayout)
		row.TotalPrice = row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Quantity)))
		results = append(results, row)
	}
	return results, rows.Err()
}

// SalesSummary combina totales por categoría y por producto.
func (s *Store) SalesSummary(ctx context.Context) (*dto.SalesSummaryDTO, error) {
	categories, err := s.TotalSalesByCategory(ctx)
	if err != nil {
		return nil, err
	}

	const query = `
	SELECT pd.name, COALESCE(SUM(sd.quantity), 0)::INT AS total_quantity
	FROM Products pd
	LEFT JOIN SaleDetails sd ON sd.product_id = pd.id
	GROUP BY pd.id, pd.name
	ORDER BY total_quantity DESC, pd.name ASC`

	rows, err := s.pool.Query(ctx, query)
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

// FetchAll vuelca las cuatro tablas en orden físico para el conversor.
func (s *Store) FetchAll(ctx context.Context) (*repository.ShopRows, error) {
	out := &repository.ShopRows{}

	rows, err := s.pool.Query(ctx,
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

	rows, err = s.pool.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), price, category_id FROM Products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("shop.FetchAll productos: %w", err)
	}
	for rows.Next() {
		var p repository.ProductRow
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("shop.FetchAll productos scan: %w", err)
		}
		out.Products = append(out.Products, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx, `SELECT id, date FROM Sales ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("shop.FetchAll ventas: %w", err)
	}
	for rows.Next() {
		var sl repository.SaleRow
		if err := rows.Scan(&sl.ID, &sl.Date); err != nil {
			rows.Close()
			return nil, fmt.Errorf("shop.FetchAll ventas scan: %w", err)
		}
		sl.Date = entity.Day(sl.Date)
		out.Sales = append(out.Sales, sl)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.pool.Query(ctx,
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
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Close libera el pool. Devuelve error para cumplir el contrato de ShopStore.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
