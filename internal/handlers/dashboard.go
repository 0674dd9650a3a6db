package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aben-G/E-commerce-main/internal/service/dashboard"
)

type DashboardHandler struct {
	Dashboard *dashboard.Service
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.Dashboard.Stats()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch dashboard stats")
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) RecentProduct(c echo.Context) error {
	product, err := h.Dashboard.RecentProduct()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch recent product")
	}

	return c.JSON(http.StatusOK, echo.Map{"product": product})
}

func (h *DashboardHandler) Sales(c echo.Context) error {
	days := parseIntDefault(c.QueryParam("days"), dashboard.DefaultSalesDays)

	series, err := h.Dashboard.Sales(days)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch sales data")
	}

	return c.JSON(http.StatusOK, series)
}

func (h *DashboardHandler) TopProducts(c echo.Context) error {
	limit := parseIntDefault(c.QueryParam("limit"), dashboard.DefaultTopLimit)

	products, err := h.Dashboard.TopProducts(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch top products")
	}

	return c.JSON(http.StatusOK, products)
}
