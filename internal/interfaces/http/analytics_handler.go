package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/martin-jeremy/linkedin-sql-nosql/internal/application/dto"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/entity"
	"github.com/martin-jeremy/linkedin-sql-nosql/internal/domain/repository"
)

// AnalyticsHandler expone las cinco consultas analíticas por HTTP. Trabaja
// contra la interfaz ShopAnalytics: normalmente el motor de documento, pero
// cualquier implementación sirve.
type AnalyticsHandler struct {
	analytics repository.ShopAnalytics
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(analytics repository.ShopAnalytics) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// CategorySales devuelve el total de unidades vendidas por categoría.
// GET /api/analytics/categories
func (h *AnalyticsHandler) CategorySales(c *fiber.Ctx) error {
	rows, err := h.analytics.TotalSalesByCategory(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// ProductRevenue devuelve el ranking de productos por ingreso total.
// GET /api/analytics/products
func (h *AnalyticsHandler) ProductRevenue(c *fiber.Ctx) error {
	rows, err := h.analytics.TotalPriceByProduct(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// DailySales devuelve todas las ventas de una fecha exacta.
// GET /api/analytics/daily?date=YYYY-MM-DD
func (h *AnalyticsHandler) DailySales(c *fiber.Ctx) error {
	var req dto.DailySalesRequest
	if err := c.QueryParser(&req); err != nil || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetro date (YYYY-MM-DD) obligatorio",
		})
	}
	date, err := entity.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_DATE", Message: "date debe tener formato YYYY-MM-DD",
		})
	}

	rows, err := h.analytics.SalesByDate(c.Context(), date)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// MonthlySales devuelve las ventas de un producto en un mes de calendario.
// GET /api/analytics/monthly?product=Laptop&year=2024&month=8
func (h *AnalyticsHandler) MonthlySales(c *fiber.Ctx) error {
	var req dto.MonthlySalesRequest
	if err := c.QueryParser(&req); err != nil || req.Product == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros product, year y month obligatorios",
		})
	}

	rows, err := h.analytics.ProductSalesByMonth(c.Context(), req.Product, req.Year, req.Month)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_MONTH", Message: err.Error(),
		})
	case err != nil:
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// Summary devuelve el resumen jerárquico (totales por categoría y producto).
// GET /api/analytics/summary
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.analytics.SalesSummary(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(summary)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
