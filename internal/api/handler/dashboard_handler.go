package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// DashboardHandler serves the report views.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Admin returns the admin report view. Sections that failed to load are
// listed in the errors map; the rest render normally.
//
// @Summary      Admin dashboard
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  domain.AdminDashboard
// @Failure      403  {object}  map[string]string
// @Router       /console/dashboard/admin [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Admin(c.Request().Context()))
}

// Inventory returns the inventory manager report view.
//
// @Summary      Inventory dashboard
// @Tags         dashboards
// @Produce      json
// @Success      200  {object}  domain.InventoryDashboard
// @Failure      403  {object}  map[string]string
// @Router       /console/dashboard/inventory [get]
func (h *DashboardHandler) Inventory(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Inventory(c.Request().Context()))
}
