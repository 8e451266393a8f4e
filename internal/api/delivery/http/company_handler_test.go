package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/api/repository"
	"pe-portfolio-aggregator/internal/api/service"
	"pe-portfolio-aggregator/internal/entity"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testAdminKey = "secret-admin-key"

func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.PEFirm{},
		&entity.Company{},
		&entity.CompanyPEInvestment{},
		&entity.CompanyTag{},
	))

	log, err := logger.New("error", "console")
	require.NoError(t, err)

	companySvc := service.NewCompanyService(repository.NewCompanyRepository(db), log)
	handler := NewCompanyHandler(companySvc, testAdminKey, log)

	e := echo.New()
	handler.RegisterRoutes(e.Group("/api/companies"))
	return e, db
}

func seedCompany(t *testing.T, db *gorm.DB) entity.Company {
	t.Helper()
	firm := entity.PEFirm{Name: "Vista Equity Partners"}
	require.NoError(t, db.Create(&firm).Error)

	company := entity.Company{
		Name:             "Acme Software",
		NormalizedName:   "acme software",
		Description:      "Workflow automation.",
		Website:          "https://acme.com",
		IndustryCategory: "Technology & Software",
		Country:          "United States",
	}
	require.NoError(t, db.Create(&company).Error)
	require.NoError(t, db.Create(&entity.CompanyPEInvestment{
		CompanyID:      company.ID,
		PEFirmID:       firm.ID,
		ComputedStatus: entity.StatusActive,
	}).Error)
	require.NoError(t, db.Create(&entity.CompanyTag{
		CompanyID:   company.ID,
		TagCategory: "technology",
		TagValue:    "SaaS",
	}).Error)
	return company
}

func TestListCompanies(t *testing.T) {
	e, db := newTestServer(t)
	seedCompany(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/companies?industry=Technology+%26+Software", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.CompanyListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.EqualValues(t, 1, resp.Total)
	// No limit was requested; the response reports the served default.
	assert.Equal(t, 50, resp.Limit)
	assert.Zero(t, resp.Offset)
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, "Acme Software", resp.Companies[0].Name)
	assert.Equal(t, []string{"Vista Equity Partners"}, resp.Companies[0].PEFirms)
	require.Len(t, resp.Companies[0].Tags, 1)
	assert.Equal(t, "SaaS", resp.Companies[0].Tags[0].Value)
}

func TestListCompaniesFilterMiss(t *testing.T) {
	e, db := newTestServer(t)
	seedCompany(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/companies?country=Germany", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.CompanyListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 0, resp.Total)
	assert.Empty(t, resp.Companies)
}

func TestGetCompanyNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/companies/999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCompanyRequiresAdminKey(t *testing.T) {
	e, db := newTestServer(t)
	company := seedCompany(t, db)

	body := `{"description": "Updated."}`

	req := httptest.NewRequest(http.MethodPut, "/api/companies/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/companies/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(adminKeyHeader, "wrong-key")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/companies/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(adminKeyHeader, testAdminKey)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated entity.Company
	require.NoError(t, db.First(&updated, company.ID).Error)
	assert.Equal(t, "Updated.", updated.Description)
	// Untouched fields survive a partial update.
	assert.Equal(t, "https://acme.com", updated.Website)
}

func TestDeleteCompanyCascades(t *testing.T) {
	e, db := newTestServer(t)
	company := seedCompany(t, db)

	req := httptest.NewRequest(http.MethodDelete, "/api/companies/1", nil)
	req.Header.Set(adminKeyHeader, testAdminKey)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var companyCount, investmentCount, tagCount int64
	require.NoError(t, db.Model(&entity.Company{}).Where("id = ?", company.ID).Count(&companyCount).Error)
	require.NoError(t, db.Model(&entity.CompanyPEInvestment{}).Count(&investmentCount).Error)
	require.NoError(t, db.Model(&entity.CompanyTag{}).Count(&tagCount).Error)
	assert.Zero(t, companyCount)
	assert.Zero(t, investmentCount)
	assert.Zero(t, tagCount)
}
