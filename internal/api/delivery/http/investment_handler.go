package http

import (
	"net/http"

	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/api/service"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
)

// InvestmentHandler handles HTTP requests for investments.
type InvestmentHandler struct {
	investmentService service.InvestmentService
	logger            *logger.Logger
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService service.InvestmentService, logger *logger.Logger) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService, logger: logger}
}

// RegisterRoutes registers the investment routes to the Echo group.
func (h *InvestmentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListInvestments)
}

// ListInvestments godoc
// @Summary List investments
// @Description List firm/company investment rows with filters and pagination
// @Tags investments
// @Produce  json
// @Param   pe_firm   query   string  false   "PE firm names"
// @Param   status    query   string  false   "Computed status (Active/Exit)"
// @Param   exit_type query   string  false   "Exit type (IPO/Acquisition/Exit)"
// @Param   industry  query   string  false   "Industry categories"
// @Param   search    query   string  false   "Company name substring"
// @Param   limit     query   int     false   "Page size"
// @Param   offset    query   int     false   "Page offset"
// @Success 200 {object} dto.InvestmentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/investments [get]
func (h *InvestmentHandler) ListInvestments(c echo.Context) error {
	var req dto.InvestmentListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
	}

	resp, err := h.investmentService.ListInvestments(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Failed to list investments", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list investments"})
	}
	return c.JSON(http.StatusOK, resp)
}
