package entity

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestAutoMigrateCreatesAllTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{
		"pe_firms", "companies", "company_pe_investments", "company_tags", "scrape_runs",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestScrapeRunRoundTripsOnSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	run := ScrapeRun{
		PEFirmName:      "Vista Equity Partners",
		Status:          ScrapeRunStatusPartial,
		CompaniesFound:  3,
		CompaniesAdded:  2,
		FailedCompanies: pq.StringArray{"Acme Software", "Ledgerly"},
		StartedAt:       time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&run).Error)

	var loaded ScrapeRun
	require.NoError(t, db.First(&loaded, run.ID).Error)
	assert.Equal(t, ScrapeRunStatusPartial, loaded.Status)
	assert.Equal(t, pq.StringArray{"Acme Software", "Ledgerly"}, loaded.FailedCompanies)
}
