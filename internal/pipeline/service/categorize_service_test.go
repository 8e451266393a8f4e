package service

import (
	"context"
	"testing"

	"pe-portfolio-aggregator/internal/entity"
	"pe-portfolio-aggregator/internal/pipeline/repository"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeEstimatesPredictedRevenue(t *testing.T) {
	db := newTestDB(t)
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	svc := NewCategorizeService(
		repository.NewCompanyRepository(db),
		repository.NewInvestmentRepository(db),
		nil,
		log,
	)

	company := entity.Company{
		Name:             "Acme Software",
		NormalizedName:   "acme software",
		Description:      "Cloud workflow automation platform.",
		EmployeeCount:    "c_00101_00250",
		RevenueRange:     "r_00010000",
		IndustryCategory: "Technology & Software",
	}
	require.NoError(t, db.Create(&company).Error)

	result, err := svc.CategorizeCompanies(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RevenuePredicted)

	var updated entity.Company
	require.NoError(t, db.First(&updated, company.ID).Error)
	// 175 employee midpoint at the software benchmark.
	assert.Equal(t, float64(175*500000), updated.PredictedRevenue)
	assert.NotEmpty(t, updated.CompanySizeCategory)
	assert.NotEmpty(t, updated.RevenueTier)
}

func TestCategorizeSkipsRevenueWithoutEmployeeData(t *testing.T) {
	db := newTestDB(t)
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	svc := NewCategorizeService(
		repository.NewCompanyRepository(db),
		repository.NewInvestmentRepository(db),
		nil,
		log,
	)

	require.NoError(t, db.Create(&entity.Company{
		Name: "Stealthy", NormalizedName: "stealthy",
	}).Error)

	result, err := svc.CategorizeCompanies(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.RevenuePredicted)

	var updated entity.Company
	require.NoError(t, db.First(&updated).Error)
	assert.Zero(t, updated.PredictedRevenue)
}
