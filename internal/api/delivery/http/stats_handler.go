package http

import (
	"net/http"

	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/api/service"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StatsHandler handles HTTP requests for the aggregate endpoints.
type StatsHandler struct {
	statsService service.StatsService
	logger       *logger.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

// RegisterRoutes registers the aggregate routes to the Echo group.
func (h *StatsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stats", h.GetStats)
	g.GET("/filters", h.GetFilters)
	g.GET("/pe-firms", h.ListFirms)
}

// GetStats godoc
// @Summary Dashboard stats
// @Description Aggregate totals, co-investment count and enrichment rate
// @Tags stats
// @Produce  json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/stats [get]
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.statsService.GetStats(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to compute stats", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to compute stats"})
	}
	return c.JSON(http.StatusOK, stats)
}

// GetFilters godoc
// @Summary Filter values
// @Description Distinct values for every dashboard filter
// @Tags stats
// @Produce  json
// @Success 200 {object} dto.FiltersResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/filters [get]
func (h *StatsHandler) GetFilters(c echo.Context) error {
	filters, err := h.statsService.GetFilters(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list filters", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list filters"})
	}
	return c.JSON(http.StatusOK, filters)
}

// ListFirms godoc
// @Summary List PE firms
// @Description Every firm with its portfolio counters
// @Tags pe-firms
// @Produce  json
// @Success 200 {array} dto.PEFirmResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/pe-firms [get]
func (h *StatsHandler) ListFirms(c echo.Context) error {
	firms, err := h.statsService.ListFirms(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list firms", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list firms"})
	}
	return c.JSON(http.StatusOK, firms)
}
