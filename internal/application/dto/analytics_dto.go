package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// DailySalesRequest parámetros para GET /api/analytics/daily.
type DailySalesRequest struct {
	Date string `query:"date"` // YYYY-MM-DD, obligatorio
}

// MonthlySalesRequest parámetros para GET /api/analytics/monthly.
type MonthlySalesRequest struct {
	Product string `query:"product"` // nombre exacto del producto, obligatorio
	Year    int    `query:"year"`
	Month   int    `query:"month"` // 1-12
}

// ── Filas de resultado ────────────────────────────────────────────────────────

// CategorySalesDTO total de unidades vendidas por categoría.
// Las categorías sin ventas aparecen con total 0 (semántica de left join).
type CategorySalesDTO struct {
	Category      string `json:"category"`
	TotalQuantity int    `json:"total_quantity"`
}

// ProductRevenueDTO fila del ranking de ingresos por producto.
// TotalRevenue = UnitPrice × TotalQuantity; 0 si el producto no tiene ventas.
type ProductRevenueDTO struct {
	Product       string          `json:"product"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// DailySaleDTO una línea de venta de un día concreto, expandida con su
// categoría y producto. TotalPrice = UnitPrice × Quantity.
type DailySaleDTO struct {
	Category   string          `json:"category"`
	Product    string          `json:"product"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Date       string          `json:"date"` // YYYY-MM-DD
}

// MonthlySaleDTO una línea de venta de un producto dentro de un mes de calendario.
type MonthlySaleDTO struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// ProductTotalDTO total de unidades vendidas de un producto (resumen jerárquico).
type ProductTotalDTO struct {
	Product       string `json:"product"`
	TotalQuantity int    `json:"total_quantity"`
}

// SalesSummaryDTO resumen jerárquico: totales por categoría y por producto en
// un solo resultado, sin fila de gran total (equivalente a un ROLLUP parcial).
// Categories conserva el orden de recorrido del documento; Products va ordenado
// por cantidad descendente y nombre ascendente en empates.
type SalesSummaryDTO struct {
	Categories []CategorySalesDTO `json:"categories"`
	Products   []ProductTotalDTO  `json:"products"`
}
