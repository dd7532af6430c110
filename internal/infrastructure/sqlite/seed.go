package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/entity"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
)

// InsertRows carga las filas normalizadas en una sola transacción. El precio
// se persiste como REAL (el esquema de referencia usa FLOAT) y la fecha como
// TEXT en formato ISO, que ordena lexicográficamente igual que cronológicamente.
func (s *Store) InsertRows(ctx context.Context, rows *repository.ShopRows) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, c := range rows.Categories {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO Categories (id, name, description) VALUES (?, ?, ?)`,
				c.ID, c.Name, c.Description); err != nil {
				return fmt.Errorf("insertar categoría %q: %w", c.Name, err)
			}
		}
		for _, p := range rows.Products {
			price, _ := p.Price.Float64()
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO Products (id, name, description, price, category_id) VALUES (?, ?, ?, ?, ?)`,
				p.ID, p.Name, p.Description, price, p.CategoryID); err != nil {
				return fmt.Errorf("insertar producto %q: %w", p.Name, err)
			}
		}
		for _, sl := range rows.Sales {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO Sales (id, date) VALUES (?, ?)`,
				sl.ID, sl.Date.Format(entity.DateLayout)); err != nil {
				return fmt.Errorf("insertar venta %d: %w", sl.ID, err)
			}
		}
		for _, d := range rows.Details {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO SaleDetails (id, sale_id, product_id, quantity) VALUES (?, ?, ?, ?)`,
				d.ID, d.SaleID, d.ProductID, d.Quantity); err != nil {
				return fmt.Errorf("insertar línea %d: %w", d.ID, err)
			}
		}
		return nil
	})
}

// inTx ejecuta fn dentro de una transacción con commit/rollback automático.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("abrir transacción: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
