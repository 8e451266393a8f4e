package repository

import (
	"context"
	"errors"

	"pe-portfolio-aggregator/internal/entity"

	"gorm.io/gorm"
)

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	FindByNormalizedName(ctx context.Context, normalizedName string) (*entity.Company, error)
	FindByID(ctx context.Context, id uint) (*entity.Company, error)
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	FindNeedingEnrichment(ctx context.Context, limit int) ([]entity.Company, error)
	FindUncategorized(ctx context.Context, limit int) ([]entity.Company, error)
	FindAllWithInvestments(ctx context.Context) ([]entity.Company, error)
}

// NewCompanyRepository creates a new GORM-based company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

type companyRepository struct {
	db *gorm.DB
}

// FindByNormalizedName retrieves a company by its normalized name, or
// nil when absent. The normalized name is the dedup key across firms.
func (r *companyRepository) FindByNormalizedName(ctx context.Context, normalizedName string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).Where("normalized_name = ?", normalizedName).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// FindByID retrieves a company with its investments and tags.
func (r *companyRepository) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).
		Preload("Investments").
		Preload("Investments.PEFirm").
		Preload("Tags").
		First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Create creates a new company.
func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// Update saves the company record.
func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// FindNeedingEnrichment retrieves companies that still have blank
// enrichment fields.
func (r *companyRepository) FindNeedingEnrichment(ctx context.Context, limit int) ([]entity.Company, error) {
	var companies []entity.Company
	q := r.db.WithContext(ctx).
		Where("description = '' OR linkedin_url = '' OR revenue_range = '' OR employee_count = '' OR country = ''").
		Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindUncategorized retrieves companies missing a derived category or
// a revenue estimate.
func (r *companyRepository) FindUncategorized(ctx context.Context, limit int) ([]entity.Company, error) {
	var companies []entity.Company
	q := r.db.WithContext(ctx).
		Where("company_size_category = '' OR revenue_tier = '' OR industry_category = '' OR predicted_revenue = 0").
		Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindAllWithInvestments retrieves every company with investments loaded.
func (r *companyRepository) FindAllWithInvestments(ctx context.Context) ([]entity.Company, error) {
	var companies []entity.Company
	err := r.db.WithContext(ctx).
		Preload("Investments").
		Order("id").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}
