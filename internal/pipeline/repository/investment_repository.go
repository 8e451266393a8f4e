package repository

import (
	"context"
	"errors"

	"pe-portfolio-aggregator/internal/entity"

	"gorm.io/gorm"
)

// InvestmentRepository defines the interface for investment data
// operations. An investment is unique per (company, firm) pair.
type InvestmentRepository interface {
	FindByCompanyAndFirm(ctx context.Context, companyID, firmID uint) (*entity.CompanyPEInvestment, error)
	Create(ctx context.Context, investment *entity.CompanyPEInvestment) error
	Update(ctx context.Context, investment *entity.CompanyPEInvestment) error
	FindByCompany(ctx context.Context, companyID uint) ([]entity.CompanyPEInvestment, error)
}

// NewInvestmentRepository creates a new GORM-based investment repository.
func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepository{db: db}
}

type investmentRepository struct {
	db *gorm.DB
}

// FindByCompanyAndFirm retrieves the investment row for a (company,
// firm) pair, or nil when absent.
func (r *investmentRepository) FindByCompanyAndFirm(ctx context.Context, companyID, firmID uint) (*entity.CompanyPEInvestment, error) {
	var investment entity.CompanyPEInvestment
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND pe_firm_id = ?", companyID, firmID).
		First(&investment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &investment, nil
}

// Create creates a new investment row.
func (r *investmentRepository) Create(ctx context.Context, investment *entity.CompanyPEInvestment) error {
	return r.db.WithContext(ctx).Create(investment).Error
}

// Update saves the investment row.
func (r *investmentRepository) Update(ctx context.Context, investment *entity.CompanyPEInvestment) error {
	return r.db.WithContext(ctx).Save(investment).Error
}

// FindByCompany retrieves all investment rows for a company.
func (r *investmentRepository) FindByCompany(ctx context.Context, companyID uint) ([]entity.CompanyPEInvestment, error) {
	var investments []entity.CompanyPEInvestment
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&investments).Error
	if err != nil {
		return nil, err
	}
	return investments, nil
}
