package repository

import (
	"context"
	"testing"

	"pe-portfolio-aggregator/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedPortfolio(t *testing.T, db *gorm.DB) {
	t.Helper()
	vista := entity.PEFirm{Name: "Vista Equity Partners"}
	accel := entity.PEFirm{Name: "Accel"}
	require.NoError(t, db.Create(&vista).Error)
	require.NoError(t, db.Create(&accel).Error)

	acme := entity.Company{
		Name: "Acme Software", NormalizedName: "acme software",
		Description: "Workflow automation.", RevenueRange: "r_00010000",
		IndustryCategory: "Technology & Software", Country: "United States",
	}
	ledgerly := entity.Company{
		Name: "Ledgerly", NormalizedName: "ledgerly",
		IndustryCategory: "Financial Services", Country: "United Kingdom",
		IsPublic: true,
	}
	require.NoError(t, db.Create(&acme).Error)
	require.NoError(t, db.Create(&ledgerly).Error)

	require.NoError(t, db.Create(&entity.CompanyPEInvestment{
		CompanyID: acme.ID, PEFirmID: vista.ID, ComputedStatus: entity.StatusActive,
	}).Error)
	require.NoError(t, db.Create(&entity.CompanyPEInvestment{
		CompanyID: acme.ID, PEFirmID: accel.ID, ComputedStatus: entity.StatusActive,
	}).Error)
	require.NoError(t, db.Create(&entity.CompanyPEInvestment{
		CompanyID: ledgerly.ID, PEFirmID: vista.ID, ComputedStatus: entity.StatusExit,
	}).Error)
}

func TestGetStats(t *testing.T) {
	db := newTestDB(t)
	seedPortfolio(t, db)

	stats, err := NewStatsRepository(db).GetStats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalCompanies)
	assert.EqualValues(t, 2, stats.TotalPEFirms)
	assert.EqualValues(t, 3, stats.TotalInvestments)
	assert.EqualValues(t, 2, stats.ActiveInvestments)
	assert.EqualValues(t, 1, stats.ExitedInvestments)
	assert.EqualValues(t, 1, stats.PublicCompanies)
	assert.EqualValues(t, 1, stats.CoInvestedCompanies)
	assert.EqualValues(t, 1, stats.EnrichedCompanies)
	assert.InDelta(t, 0.5, stats.EnrichmentRate, 1e-9)
	assert.EqualValues(t, 1, stats.ByIndustry["Technology & Software"])
	assert.EqualValues(t, 1, stats.ByCountry["United Kingdom"])
}

func TestGetFilters(t *testing.T) {
	db := newTestDB(t)
	seedPortfolio(t, db)

	filters, err := NewStatsRepository(db).GetFilters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Financial Services", "Technology & Software"}, filters.Industries)
	assert.Equal(t, []string{"United Kingdom", "United States"}, filters.Countries)
	assert.Equal(t, []string{"Accel", "Vista Equity Partners"}, filters.PEFirms)
	assert.Equal(t, []string{entity.StatusActive, entity.StatusExit}, filters.Statuses)
}
