package service

import (
	"context"
	"testing"
	"time"

	"pe-portfolio-aggregator/internal/entity"
	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/internal/pipeline/repository"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCrunchbase struct {
	details *dto.CompanyDetails
}

func (s stubCrunchbase) FindCompanyDetails(ctx context.Context, name string) (*dto.CompanyDetails, error) {
	return s.details, nil
}

func newEnrichTestService(t *testing.T, cfg *config.Config, crunchbase repository.CrunchbaseRepository) (EnrichService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	svc := NewEnrichService(cfg,
		repository.NewCompanyRepository(db),
		repository.NewInvestmentRepository(db),
		crunchbase, nil, nil, log)
	return svc, db
}

func TestEnrichBackfillsInvestmentYearFromFoundedYear(t *testing.T) {
	svc, db := newEnrichTestService(t, &config.Config{}, stubCrunchbase{
		details: &dto.CompanyDetails{
			Description: "Workflow automation.",
			FoundedYear: "2018",
		},
	})

	firm := entity.PEFirm{Name: "Vista Equity Partners"}
	require.NoError(t, db.Create(&firm).Error)
	company := entity.Company{Name: "Acme Software", NormalizedName: "acme software"}
	require.NoError(t, db.Create(&company).Error)
	require.NoError(t, db.Create(&entity.CompanyPEInvestment{
		CompanyID: company.ID, PEFirmID: firm.ID, ComputedStatus: entity.StatusActive,
	}).Error)

	result, err := svc.EnrichCompanies(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Enriched)

	var updated entity.Company
	require.NoError(t, db.First(&updated, company.ID).Error)
	assert.Equal(t, "Workflow automation.", updated.Description)

	var inv entity.CompanyPEInvestment
	require.NoError(t, db.First(&inv).Error)
	assert.Equal(t, "2018", inv.InvestmentYear)
	assert.Equal(t, "Mature", inv.InvestmentStage)
}

func TestEnrichKeepsExistingInvestmentYear(t *testing.T) {
	svc, db := newEnrichTestService(t, &config.Config{}, stubCrunchbase{
		details: &dto.CompanyDetails{Description: "Ledgers.", FoundedYear: "2010"},
	})

	firm := entity.PEFirm{Name: "Accel"}
	require.NoError(t, db.Create(&firm).Error)
	company := entity.Company{Name: "Ledgerly", NormalizedName: "ledgerly"}
	require.NoError(t, db.Create(&company).Error)
	require.NoError(t, db.Create(&entity.CompanyPEInvestment{
		CompanyID: company.ID, PEFirmID: firm.ID, InvestmentYear: "2021", InvestmentStage: "Recent",
	}).Error)

	_, err := svc.EnrichCompanies(context.Background(), 0)
	require.NoError(t, err)

	var inv entity.CompanyPEInvestment
	require.NoError(t, db.First(&inv).Error)
	assert.Equal(t, "2021", inv.InvestmentYear)
}

func TestEnrichBatchDelayHonorsCancellation(t *testing.T) {
	cfg := &config.Config{}
	cfg.Enrich.BatchSize = 1
	cfg.Enrich.BatchDelay = "1h"
	svc, db := newEnrichTestService(t, cfg, nil)

	for _, name := range []string{"Acme Software", "Ledgerly"} {
		require.NoError(t, db.Create(&entity.Company{
			Name: name, NormalizedName: name,
		}).Error)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	result, err := svc.EnrichCompanies(ctx, 0)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 10*time.Second, "inter-batch pause must end on cancellation")
	assert.Equal(t, 1, result.Processed)
}
