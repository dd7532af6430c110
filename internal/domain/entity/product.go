package entity

import "github.com/shopspring/decimal"

// Product es un producto del catálogo, propiedad exclusiva de una categoría.
// Name es único globalmente (precondición del documento, no se valida aquí).
// Price es el precio unitario de venta, nunca negativo.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Sales       []SaleRecord
}
