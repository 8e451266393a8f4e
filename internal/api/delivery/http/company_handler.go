package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/api/service"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// adminKeyHeader authenticates the mutating company endpoints.
const adminKeyHeader = "X-Admin-Key"

// CompanyHandler handles HTTP requests for companies.
type CompanyHandler struct {
	companyService service.CompanyService
	adminAPIKey    string
	logger         *logger.Logger
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyService, adminAPIKey string, logger *logger.Logger) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, adminAPIKey: adminAPIKey, logger: logger}
}

// RegisterRoutes registers the company routes to the Echo group.
func (h *CompanyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListCompanies)
	g.GET("/:id", h.GetCompany)
	g.PUT("/:id", h.UpdateCompany, h.requireAdminKey)
	g.DELETE("/:id", h.DeleteCompany, h.requireAdminKey)
}

// requireAdminKey rejects requests whose X-Admin-Key header does not
// match the configured key. Constant-time compare keeps the key
// unguessable through timing.
func (h *CompanyHandler) requireAdminKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		provided := c.Request().Header.Get(adminKeyHeader)
		if h.adminAPIKey == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(h.adminAPIKey)) != 1 {
			return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid admin key"})
		}
		return next(c)
	}
}

// ListCompanies godoc
// @Summary List companies
// @Description List companies with filters and pagination. Multi-value filters take comma-separated values.
// @Tags companies
// @Produce  json
// @Param   search        query   string  false   "Name/description substring"
// @Param   industry      query   string  false   "Industry categories"
// @Param   country       query   string  false   "Countries"
// @Param   size_category query   string  false   "Size categories"
// @Param   revenue_tier  query   string  false   "Revenue tiers"
// @Param   pe_firm       query   string  false   "PE firm names"
// @Param   status        query   string  false   "Investment status (Active/Exit)"
// @Param   is_public     query   string  false   "true/false"
// @Param   limit         query   int     false   "Page size"
// @Param   offset        query   int     false   "Page offset"
// @Success 200 {object} dto.CompanyListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/companies [get]
func (h *CompanyHandler) ListCompanies(c echo.Context) error {
	var req dto.CompanyListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
	}

	resp, err := h.companyService.ListCompanies(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Failed to list companies", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list companies"})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetCompany godoc
// @Summary Get a company
// @Description Get one company with its investors and tags
// @Tags companies
// @Produce  json
// @Param   id  path    int true    "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/companies/{id} [get]
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	resp, err := h.companyService.GetCompany(c.Request().Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Company not found"})
	}
	if err != nil {
		h.logger.Error("Failed to get company", logger.ErrorField(err), logger.IntField("id", int(id)))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get company"})
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateCompany godoc
// @Summary Update a company
// @Description Admin edit of descriptive company fields
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   X-Admin-Key  header  string  true    "Admin API key"
// @Param   id           path    int     true    "Company ID"
// @Param   company      body    dto.CompanyUpdateRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	var req dto.CompanyUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	resp, err := h.companyService.UpdateCompany(c.Request().Context(), id, req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Company not found"})
	}
	if err != nil {
		h.logger.Error("Failed to update company", logger.ErrorField(err), logger.IntField("id", int(id)))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update company"})
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteCompany godoc
// @Summary Delete a company
// @Description Admin removal of a company and its investments and tags
// @Tags companies
// @Produce  json
// @Param   X-Admin-Key  header  string  true    "Admin API key"
// @Param   id           path    int     true    "Company ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company ID"})
	}

	err = h.companyService.DeleteCompany(c.Request().Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Company not found"})
	}
	if err != nil {
		h.logger.Error("Failed to delete company", logger.ErrorField(err), logger.IntField("id", int(id)))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete company"})
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
