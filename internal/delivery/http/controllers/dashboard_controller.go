package controllers

import (
	"log/slog"
	"net/http"

	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"
)

// DashboardController serves the admin dashboard counters.
type DashboardController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
}

func NewDashboardController(logger *slog.Logger, catalog domain.CatalogService) *DashboardController {
	return &DashboardController{Logger: logger, Catalog: catalog}
}

// Stats godoc
// @Summary Admin dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the dashboard counters"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/stats [get]
func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Catalog.Stats(r.Context()))
}
