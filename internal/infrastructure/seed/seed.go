// Package seed genera los juegos de datos de ejemplo en forma de filas
// normalizadas, independientes del almacén que las persista.
package seed

import (
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
)

var categories = []repository.CategoryRow{
	{ID: 1, Name: "Electronics", Description: "Electronic devices and gadgets"},
	{ID: 2, Name: "Furniture", Description: "Furniture and home decor"},
	{ID: 3, Name: "Books", Description: "Books and literature"},
}

// Catálogo de demostración: los 10 primeros forman el juego fijo y los 5
// últimos se añaden solo en la carga aleatoria.
var products = []repository.ProductRow{
	{ID: 1, Name: "Laptop", Description: "A high-end gaming laptop", Price: decimal.NewFromFloat(1500.00), CategoryID: 1},
	{ID: 2, Name: "Mouse", Description: "A new-gen gaming mouse", Price: decimal.NewFromFloat(100.00), CategoryID: 1},
	{ID: 3, Name: "Keyboard", Description: "Mechanical keyboard", Price: decimal.NewFromFloat(120.00), CategoryID: 1},
	{ID: 4, Name: "Headphones", Description: "Noise-cancelling headphones", Price: decimal.NewFromFloat(150.00), CategoryID: 1},
	{ID: 5, Name: "Chair", Description: "Ergonomic office chair", Price: decimal.NewFromFloat(200.00), CategoryID: 2},
	{ID: 6, Name: "Desk", Description: "Wooden desk with drawers", Price: decimal.NewFromFloat(300.00), CategoryID: 2},
	{ID: 7, Name: "Lamp", Description: "LED desk lamp", Price: decimal.NewFromFloat(50.00), CategoryID: 2},
	{ID: 8, Name: "Novel", Description: "A best-selling novel", Price: decimal.NewFromFloat(15.00), CategoryID: 3},
	{ID: 9, Name: "Magazine", Description: "Monthly fashion magazine", Price: decimal.NewFromFloat(5.00), CategoryID: 3},
	{ID: 10, Name: "Data Cookbook", Description: "A comprehensive How-To Guide to deals on data with Python", Price: decimal.NewFromFloat(80.00), CategoryID: 3},
	{ID: 11, Name: "Couch", Description: "Comfortable two-seat couch", Price: decimal.NewFromFloat(500.00), CategoryID: 2},
	{ID: 12, Name: "Filing Cabinet", Description: "Metal filing cabinet with three drawers", Price: decimal.NewFromFloat(120.00), CategoryID: 2},
	{ID: 13, Name: "Whiteboard", Description: "Magnetic whiteboard with markers", Price: decimal.NewFromFloat(60.00), CategoryID: 2},
	{ID: 14, Name: "Science Magazine", Description: "Monthly scientific discoveries magazine", Price: decimal.NewFromFloat(7.00), CategoryID: 3},
	{ID: 15, Name: "Cooking Guide", Description: "Step-by-step cooking recipes from top chefs", Price: decimal.NewFromFloat(40.00), CategoryID: 3},
}

// Demo devuelve el juego fijo: 3 categorías, 10 productos y 5 ventas de enero
// de 2025 con 9 líneas en total.
func Demo() *repository.ShopRows {
	rows := &repository.ShopRows{
		Categories: append([]repository.CategoryRow(nil), categories...),
		Products:   append([]repository.ProductRow(nil), products[:10]...),
	}

	saleDates := []string{"2025-01-03", "2025-01-03", "2025-01-04", "2025-01-06", "2025-01-07"}
	for i, d := range saleDates {
		date, _ := time.Parse("2006-01-02", d)
		rows.Sales = append(rows.Sales, repository.SaleRow{ID: i + 1, Date: date})
	}

	details := [][4]int{ // id, sale_id, product_id, quantity
		{1, 1, 1, 1}, {2, 1, 2, 1}, {3, 1, 3, 1},
		{4, 2, 4, 1},
		{5, 3, 8, 3}, {6, 3, 9, 1},
		{7, 4, 6, 1},
		{8, 5, 5, 1}, {9, 5, 7, 1},
	}
	for _, d := range details {
		rows.Details = append(rows.Details, repository.SaleDetailRow{
			ID: d[0], SaleID: d[1], ProductID: d[2], Quantity: d[3],
		})
	}
	return rows
}

// Random devuelve el catálogo ampliado (15 productos) con `sales` ventas
// pseudoaleatorias fechadas dentro de 2024 y ordenadas ascendentemente, cada
// una con de 1 a 3 líneas de producto y cantidad (1-5) aleatorios. seed fija
// el generador para obtener cargas reproducibles.
func Random(sales int, seed int64) *repository.ShopRows {
	if sales <= 0 {
		sales = 1
	}
	rng := rand.New(rand.NewSource(seed))

	rows := &repository.ShopRows{
		Categories: append([]repository.CategoryRow(nil), categories...),
		Products:   append([]repository.ProductRow(nil), products...),
	}

	yearStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, sales)
	for i := range dates {
		dates[i] = yearStart.AddDate(0, 0, rng.Intn(365))
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	detailID := 0
	for i, date := range dates {
		saleID := i + 1
		rows.Sales = append(rows.Sales, repository.SaleRow{ID: saleID, Date: date})
		lines := 1 + rng.Intn(3)
		for l := 0; l < lines; l++ {
			detailID++
			rows.Details = append(rows.Details, repository.SaleDetailRow{
				ID:        detailID,
				SaleID:    saleID,
				ProductID: 1 + rng.Intn(len(products)),
				Quantity:  1 + rng.Intn(5),
			})
		}
	}
	return rows
}
