package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Analytics repository.ShopAnalytics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	analytics := api.Group("/analytics")
	handler := NewAnalyticsHandler(deps.Analytics)
	analytics.Get("/categories", handler.CategorySales)
	analytics.Get("/products", handler.ProductRevenue)
	analytics.Get("/daily", handler.DailySales)
	analytics.Get("/monthly", handler.MonthlySales)
	analytics.Get("/summary", handler.Summary)
}
