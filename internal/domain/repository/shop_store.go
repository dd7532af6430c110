package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filas normalizadas tal como salen del esquema relacional. El conversor las
// transforma en el documento anidado; no llevan lógica propia.

// CategoryRow fila de la tabla Categories.
type CategoryRow struct {
	ID          int
	Name        string
	Description string
}

// ProductRow fila de la tabla Products.
type ProductRow struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int
}

// SaleRow fila de la tabla Sales (una transacción, posiblemente multi-producto).
type SaleRow struct {
	ID   int
	Date time.Time
}

// SaleDetailRow fila de la tabla SaleDetails (una línea de una transacción).
type SaleDetailRow struct {
	ID        int
	SaleID    int
	ProductID int
	Quantity  int
}

// ShopRows volcado completo del esquema relacional, en el orden físico de cada tabla.
type ShopRows struct {
	Categories []CategoryRow
	Products   []ProductRow
	Sales      []SaleRow
	Details    []SaleDetailRow
}

// ShopStore acceso completo al almacén relacional: creación de esquema, carga
// de datos de ejemplo, volcado para conversión y las consultas analíticas.
type ShopStore interface {
	ShopAnalytics

	// InitSchema crea las tablas si no existen.
	InitSchema(ctx context.Context) error

	// InsertRows carga un juego de filas normalizadas (ver el paquete seed).
	// Pensado para tablas recién creadas y vacías.
	InsertRows(ctx context.Context, rows *ShopRows) error

	// FetchAll devuelve todas las filas normalizadas para el conversor.
	FetchAll(ctx context.Context) (*ShopRows, error)

	Close() error
}
