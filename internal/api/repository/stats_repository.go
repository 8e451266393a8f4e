package repository

import (
	"context"

	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/entity"

	"gorm.io/gorm"
)

// StatsRepository computes the dashboard aggregates and distinct
// filter values.
type StatsRepository interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	GetFilters(ctx context.Context) (*dto.FiltersResponse, error)
	FindAllFirms(ctx context.Context) ([]entity.PEFirm, error)
}

// NewStatsRepository creates a new GORM-based stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

type statsRepository struct {
	db *gorm.DB
}

type nameCount struct {
	Name  string
	Count int64
}

// GetStats computes the aggregate dashboard numbers in one pass.
func (r *statsRepository) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{
		ByIndustry: map[string]int64{},
		ByCountry:  map[string]int64{},
	}
	db := r.db.WithContext(ctx)

	if err := db.Model(&entity.Company{}).Count(&stats.TotalCompanies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.PEFirm{}).Count(&stats.TotalPEFirms).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.CompanyPEInvestment{}).Count(&stats.TotalInvestments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.CompanyPEInvestment{}).
		Where("computed_status = ?", entity.StatusActive).
		Count(&stats.ActiveInvestments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.CompanyPEInvestment{}).
		Where("computed_status = ?", entity.StatusExit).
		Count(&stats.ExitedInvestments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Company{}).
		Where("is_public = ?", true).
		Count(&stats.PublicCompanies).Error; err != nil {
		return nil, err
	}

	// Companies held by more than one firm.
	coInvested := db.Model(&entity.CompanyPEInvestment{}).
		Select("company_id").
		Group("company_id").
		Having("COUNT(*) > 1")
	if err := db.Table("(?) AS multi", coInvested).
		Count(&stats.CoInvestedCompanies).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&entity.Company{}).
		Where("description <> '' AND revenue_range <> ''").
		Count(&stats.EnrichedCompanies).Error; err != nil {
		return nil, err
	}
	if stats.TotalCompanies > 0 {
		stats.EnrichmentRate = float64(stats.EnrichedCompanies) / float64(stats.TotalCompanies)
	}

	var industries []nameCount
	if err := db.Model(&entity.Company{}).
		Select("industry_category AS name, COUNT(*) AS count").
		Where("industry_category <> ''").
		Group("industry_category").
		Scan(&industries).Error; err != nil {
		return nil, err
	}
	for _, row := range industries {
		stats.ByIndustry[row.Name] = row.Count
	}

	var countries []nameCount
	if err := db.Model(&entity.Company{}).
		Select("country AS name, COUNT(*) AS count").
		Where("country <> ''").
		Group("country").
		Scan(&countries).Error; err != nil {
		return nil, err
	}
	for _, row := range countries {
		stats.ByCountry[row.Name] = row.Count
	}

	return stats, nil
}

// GetFilters lists distinct values for every dashboard filter.
func (r *statsRepository) GetFilters(ctx context.Context) (*dto.FiltersResponse, error) {
	filters := &dto.FiltersResponse{
		Statuses: []string{entity.StatusActive, entity.StatusExit},
	}
	db := r.db.WithContext(ctx)

	distinct := func(model interface{}, column string, out *[]string) error {
		return db.Model(model).
			Distinct(column).
			Where(column+" <> ''").
			Order(column).
			Pluck(column, out).Error
	}

	if err := distinct(&entity.Company{}, "industry_category", &filters.Industries); err != nil {
		return nil, err
	}
	if err := distinct(&entity.Company{}, "country", &filters.Countries); err != nil {
		return nil, err
	}
	if err := distinct(&entity.Company{}, "company_size_category", &filters.SizeCategories); err != nil {
		return nil, err
	}
	if err := distinct(&entity.Company{}, "revenue_tier", &filters.RevenueTiers); err != nil {
		return nil, err
	}
	if err := db.Model(&entity.PEFirm{}).Order("name").Pluck("name", &filters.PEFirms).Error; err != nil {
		return nil, err
	}
	return filters, nil
}

// FindAllFirms retrieves all firms ordered by name.
func (r *statsRepository) FindAllFirms(ctx context.Context) ([]entity.PEFirm, error) {
	var firms []entity.PEFirm
	if err := r.db.WithContext(ctx).Order("name").Find(&firms).Error; err != nil {
		return nil, err
	}
	return firms, nil
}
