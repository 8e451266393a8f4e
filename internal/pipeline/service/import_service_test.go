package service

import (
	"context"
	"testing"
	"time"

	"pe-portfolio-aggregator/internal/entity"
	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/internal/pipeline/repository"
	"pe-portfolio-aggregator/pkg/logger"

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

func newImportService(t *testing.T, db *gorm.DB) ImportService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return NewImportService(
		repository.NewCompanyRepository(db),
		repository.NewPEFirmRepository(db),
		repository.NewInvestmentRepository(db),
		nil,
		log,
	)
}

func TestImportSnapshotCreatesCompaniesAndInvestments(t *testing.T) {
	db := newTestDB(t)
	svc := newImportService(t, db)

	snapshot := dto.PortfolioSnapshot{
		PEFirm:         "Vista Equity Partners",
		ExtractionDate: time.Now(),
		TotalCompanies: 2,
		Companies: []dto.ScrapedCompany{
			{Name: "Acme Software", Status: "current", Website: "https://acme.com", Headquarters: "Austin, TX"},
			{Name: "Ledgerly", Status: "former", ExitInfo: "Acquired by BigCo in 2021"},
		},
	}

	result, err := svc.ImportSnapshot(context.Background(), snapshot)
	require.NoError(t, err)
	assert.Equal(t, 2, result.CompaniesAdded)
	assert.Equal(t, 0, result.CompaniesUpdated)
	assert.Empty(t, result.FailedCompanies)

	var companies []entity.Company
	require.NoError(t, db.Order("name").Find(&companies).Error)
	require.Len(t, companies, 2)
	assert.Equal(t, "Austin", companies[0].City)
	assert.Equal(t, "TX", companies[0].StateRegion)
	assert.Equal(t, "United States", companies[0].Country)

	var investments []entity.CompanyPEInvestment
	require.NoError(t, db.Find(&investments).Error)
	require.Len(t, investments, 2)

	byCompany := map[uint]entity.CompanyPEInvestment{}
	for _, inv := range investments {
		byCompany[inv.CompanyID] = inv
	}
	assert.Equal(t, entity.StatusActive, byCompany[companies[0].ID].ComputedStatus)
	exited := byCompany[companies[1].ID]
	assert.Equal(t, entity.StatusExit, exited.ComputedStatus)
	assert.Equal(t, "Acquisition", exited.ExitType)
	assert.Equal(t, "2021", exited.ExitYear)
	assert.NotNil(t, exited.StatusConfirmedAt)

	var firm entity.PEFirm
	require.NoError(t, db.First(&firm, "name = ?", "Vista Equity Partners").Error)
	assert.Equal(t, 2, firm.TotalCompanies)
	assert.Equal(t, 1, firm.CurrentPortfolioCount)
	assert.Equal(t, 1, firm.ExitedPortfolioCount)
}

func TestReimportCreatesNoDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := newImportService(t, db)
	ctx := context.Background()

	first := dto.PortfolioSnapshot{
		PEFirm: "Vista Equity Partners",
		Companies: []dto.ScrapedCompany{
			{Name: "Datadog, Inc.", Status: "current", Website: "https://old.datadoghq.com", Description: "Monitoring."},
		},
	}
	_, err := svc.ImportSnapshot(ctx, first)
	require.NoError(t, err)

	// Name variant, fresher website, blank description.
	second := dto.PortfolioSnapshot{
		PEFirm: "Vista Equity Partners",
		Companies: []dto.ScrapedCompany{
			{Name: "Datadog Inc", Status: "current", Website: "https://www.datadoghq.com"},
		},
	}
	result, err := svc.ImportSnapshot(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 0, result.CompaniesAdded)
	assert.Equal(t, 1, result.CompaniesUpdated)

	var companyCount, investmentCount int64
	require.NoError(t, db.Model(&entity.Company{}).Count(&companyCount).Error)
	require.NoError(t, db.Model(&entity.CompanyPEInvestment{}).Count(&investmentCount).Error)
	assert.EqualValues(t, 1, companyCount)
	assert.EqualValues(t, 1, investmentCount)

	var company entity.Company
	require.NoError(t, db.First(&company).Error)
	// The website tracks the latest scrape; other fields keep their
	// first-imported values.
	assert.Equal(t, "https://www.datadoghq.com", company.Website)
	assert.Equal(t, "Monitoring.", company.Description)
	assert.Equal(t, "Datadog, Inc.", company.Name)
}

func TestReimportSameCompanyAcrossFirms(t *testing.T) {
	db := newTestDB(t)
	svc := newImportService(t, db)
	ctx := context.Background()

	_, err := svc.ImportSnapshot(ctx, dto.PortfolioSnapshot{
		PEFirm:    "Vista Equity Partners",
		Companies: []dto.ScrapedCompany{{Name: "Acme Software", Status: "current"}},
	})
	require.NoError(t, err)

	_, err = svc.ImportSnapshot(ctx, dto.PortfolioSnapshot{
		PEFirm:    "TA Associates",
		Companies: []dto.ScrapedCompany{{Name: "Acme Software", Status: "former"}},
	})
	require.NoError(t, err)

	var companyCount, investmentCount int64
	require.NoError(t, db.Model(&entity.Company{}).Count(&companyCount).Error)
	require.NoError(t, db.Model(&entity.CompanyPEInvestment{}).Count(&investmentCount).Error)
	assert.EqualValues(t, 1, companyCount, "one company row shared across firms")
	assert.EqualValues(t, 2, investmentCount, "one investment row per firm")
}

func TestReimportRecomputesStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newImportService(t, db)
	ctx := context.Background()

	_, err := svc.ImportSnapshot(ctx, dto.PortfolioSnapshot{
		PEFirm:    "Andreessen Horowitz",
		Companies: []dto.ScrapedCompany{{Name: "GeneWorks", Status: "current"}},
	})
	require.NoError(t, err)

	var before entity.CompanyPEInvestment
	require.NoError(t, db.First(&before).Error)
	assert.Equal(t, entity.StatusActive, before.ComputedStatus)

	_, err = svc.ImportSnapshot(ctx, dto.PortfolioSnapshot{
		PEFirm:    "Andreessen Horowitz",
		Companies: []dto.ScrapedCompany{{Name: "GeneWorks", Status: "exit", ExitInfo: "IPO: GNWX"}},
	})
	require.NoError(t, err)

	var after entity.CompanyPEInvestment
	require.NoError(t, db.First(&after).Error)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, entity.StatusExit, after.ComputedStatus)
	assert.Equal(t, "IPO", after.ExitType)
	assert.True(t, after.StatusConfirmedAt.After(*before.StatusConfirmedAt) ||
		after.StatusConfirmedAt.Equal(*before.StatusConfirmedAt))

	var company entity.Company
	require.NoError(t, db.First(&company).Error)
	assert.True(t, company.IsPublic)
	assert.Equal(t, "GNWX", company.IPOTicker)
}
