package repository

import (
	"context"
	"strings"

	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/entity"

	"gorm.io/gorm"
)

const defaultPageSize = 50
const maxPageSize = 200

// CompanyRepository serves the read and admin-edit sides of the
// company endpoints.
type CompanyRepository interface {
	List(ctx context.Context, req dto.CompanyListRequest) ([]entity.Company, int64, error)
	FindByID(ctx context.Context, id uint) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id uint) error
}

// NewCompanyRepository creates a new GORM-based company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

type companyRepository struct {
	db *gorm.DB
}

// splitMulti turns a comma-separated filter value into its parts.
func splitMulti(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ClampPage normalizes the requested page window to the served one:
// a missing limit becomes the default page size and oversized limits
// are capped.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// List applies the request filters and returns one page plus the total
// match count. Multi-value filters become IN clauses.
func (r *companyRepository) List(ctx context.Context, req dto.CompanyListRequest) ([]entity.Company, int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.Company{})

	if req.Search != "" {
		pattern := "%" + strings.ToLower(req.Search) + "%"
		q = q.Where("LOWER(companies.name) LIKE ? OR LOWER(companies.description) LIKE ?", pattern, pattern)
	}
	if vals := splitMulti(req.Industry); len(vals) > 0 {
		q = q.Where("companies.industry_category IN ?", vals)
	}
	if vals := splitMulti(req.Country); len(vals) > 0 {
		q = q.Where("companies.country IN ?", vals)
	}
	if vals := splitMulti(req.SizeCategory); len(vals) > 0 {
		q = q.Where("companies.company_size_category IN ?", vals)
	}
	if vals := splitMulti(req.RevenueTier); len(vals) > 0 {
		q = q.Where("companies.revenue_tier IN ?", vals)
	}
	if req.IsPublic != "" {
		q = q.Where("companies.is_public = ?", req.IsPublic == "true")
	}
	if req.PEFirm != "" || req.Status != "" {
		q = q.Joins("JOIN company_pe_investments cpi ON cpi.company_id = companies.id")
		if vals := splitMulti(req.PEFirm); len(vals) > 0 {
			q = q.Joins("JOIN pe_firms pf ON pf.id = cpi.pe_firm_id").
				Where("pf.name IN ?", vals)
		}
		if req.Status != "" {
			q = q.Where("cpi.computed_status = ?", req.Status)
		}
		q = q.Group("companies.id")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := ClampPage(req.Limit, req.Offset)
	var companies []entity.Company
	err := q.
		Preload("Investments").
		Preload("Investments.PEFirm").
		Preload("Tags").
		Order("companies.name").
		Limit(limit).
		Offset(offset).
		Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

// FindByID retrieves one company with investments and tags.
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

// Update saves the company record.
func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// Delete removes a company together with its investments and tags.
func (r *companyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&entity.CompanyTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&entity.CompanyPEInvestment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Company{}, id).Error
	})
}
