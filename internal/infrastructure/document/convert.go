// Package document construye el documento anidado a partir del volcado
// relacional y lo persiste como archivo JSON de una sola instantánea.
package document

import (
	"sort"
	"time"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/entity"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
)

// Convert desnormaliza las filas en la jerarquía categorías → productos →
// ventas. Antes de agrupar hace una pasada construyendo los mapas de consulta
// (venta → fecha, categoría → posición, producto → líneas): misma salida que
// los re-escaneos anidados del conversor ingenuo, pero en tiempo lineal.
//
// Las ventas de cada producto quedan ordenadas por fecha; los empates conservan
// el orden físico de las líneas. El documento resultante es el snapshot de solo
// lectura que consume el motor de consultas.
func Convert(rows *repository.ShopRows) *entity.Document {
	dates := make(map[int]time.Time, len(rows.Sales))
	for _, s := range rows.Sales {
		dates[s.ID] = entity.Day(s.Date)
	}

	salesByProduct := make(map[int][]entity.SaleRecord, len(rows.Products))
	for _, d := range rows.Details {
		salesByProduct[d.ProductID] = append(salesByProduct[d.ProductID], entity.SaleRecord{
			Ticket:   d.SaleID,
			Date:     dates[d.SaleID],
			Quantity: d.Quantity,
		})
	}
	for _, sales := range salesByProduct {
		sort.SliceStable(sales, func(i, j int) bool {
			return sales[i].Date.Before(sales[j].Date)
		})
	}

	position := make(map[int]int, len(rows.Categories))
	categories := make([]entity.Category, len(rows.Categories))
	for i, c := range rows.Categories {
		categories[i] = entity.Category{ID: c.ID, Name: c.Name, Description: c.Description}
		position[c.ID] = i
	}
	for _, p := range rows.Products {
		i, ok := position[p.CategoryID]
		if !ok {
			// Producto huérfano: el documento bien formado no los tiene y el
			// motor no los defiende; aquí simplemente no se emite.
			continue
		}
		categories[i].Products = append(categories[i].Products, entity.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Sales:       salesByProduct[p.ID],
		})
	}

	return entity.NewDocument(categories)
}
