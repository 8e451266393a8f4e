package repository

import (
	"context"
	"strings"

	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/entity"

	"gorm.io/gorm"
)

// InvestmentRepository serves the investment list endpoint.
type InvestmentRepository interface {
	List(ctx context.Context, req dto.InvestmentListRequest) ([]entity.CompanyPEInvestment, int64, error)
}

// NewInvestmentRepository creates a new GORM-based investment repository.
func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepository{db: db}
}

type investmentRepository struct {
	db *gorm.DB
}

// List applies the request filters and returns one page plus the total
// match count.
func (r *investmentRepository) List(ctx context.Context, req dto.InvestmentListRequest) ([]entity.CompanyPEInvestment, int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.CompanyPEInvestment{}).
		Joins("JOIN companies c ON c.id = company_pe_investments.company_id").
		Joins("JOIN pe_firms pf ON pf.id = company_pe_investments.pe_firm_id")

	if vals := splitMulti(req.PEFirm); len(vals) > 0 {
		q = q.Where("pf.name IN ?", vals)
	}
	if req.Status != "" {
		q = q.Where("company_pe_investments.computed_status = ?", req.Status)
	}
	if req.ExitType != "" {
		q = q.Where("company_pe_investments.exit_type = ?", req.ExitType)
	}
	if vals := splitMulti(req.Industry); len(vals) > 0 {
		q = q.Where("c.industry_category IN ?", vals)
	}
	if req.Search != "" {
		pattern := "%" + strings.ToLower(req.Search) + "%"
		q = q.Where("LOWER(c.name) LIKE ?", pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := ClampPage(req.Limit, req.Offset)
	var investments []entity.CompanyPEInvestment
	err := q.
		Preload("Company").
		Preload("PEFirm").
		Order("c.name").
		Limit(limit).
		Offset(offset).
		Find(&investments).Error
	if err != nil {
		return nil, 0, err
	}
	return investments, total, nil
}
