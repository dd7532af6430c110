package entity

import "time"

// DateLayout formato de fecha de calendario usado en todo el sistema (ISO 8601, sin hora).
const DateLayout = "2006-01-02"

// SaleRecord es una línea de venta atribuida a exactamente un producto.
// Ticket referencia la transacción de venta; una misma transacción puede
// generar varias líneas (Ticket NO es único por registro).
// Quantity siempre es >= 1. Date es una fecha de calendario a medianoche UTC.
type SaleRecord struct {
	Ticket   int
	Date     time.Time
	Quantity int
}

// ParseDate interpreta una fecha YYYY-MM-DD como fecha de calendario en UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Day normaliza un instante a su fecha de calendario (medianoche UTC).
// Permite comparar por igualdad fechas que llegan con componente horario.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TotalQuantity suma las cantidades de una secuencia de líneas de venta.
// Devuelve 0 para la secuencia vacía: es el equivalente por recorrido del
// COALESCE(SUM(quantity), 0) de un agregado con outer join.
func TotalQuantity(sales []SaleRecord) int {
	total := 0
	for _, s := range sales {
		total += s.Quantity
	}
	return total
}
