package repository

import (
	"context"
	"errors"

	"pe-portfolio-aggregator/internal/entity"

	"gorm.io/gorm"
)

// PEFirmRepository defines the interface for PE firm data operations.
type PEFirmRepository interface {
	FindByName(ctx context.Context, name string) (*entity.PEFirm, error)
	FindOrCreate(ctx context.Context, name string) (*entity.PEFirm, error)
	Update(ctx context.Context, firm *entity.PEFirm) error
	RefreshCounts(ctx context.Context, firmID uint) error
	FindAll(ctx context.Context) ([]entity.PEFirm, error)
}

// NewPEFirmRepository creates a new GORM-based PE firm repository.
func NewPEFirmRepository(db *gorm.DB) PEFirmRepository {
	return &peFirmRepository{db: db}
}

type peFirmRepository struct {
	db *gorm.DB
}

// FindByName retrieves a firm by its exact name, or nil when absent.
func (r *peFirmRepository) FindByName(ctx context.Context, name string) (*entity.PEFirm, error) {
	var firm entity.PEFirm
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&firm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &firm, nil
}

// FindOrCreate returns the firm with the given name, creating it if needed.
func (r *peFirmRepository) FindOrCreate(ctx context.Context, name string) (*entity.PEFirm, error) {
	firm, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if firm != nil {
		return firm, nil
	}
	firm = &entity.PEFirm{Name: name}
	if err := r.db.WithContext(ctx).Create(firm).Error; err != nil {
		return nil, err
	}
	return firm, nil
}

// Update saves the firm record.
func (r *peFirmRepository) Update(ctx context.Context, firm *entity.PEFirm) error {
	return r.db.WithContext(ctx).Save(firm).Error
}

// RefreshCounts recomputes the firm's portfolio counters from its
// investment rows.
func (r *peFirmRepository) RefreshCounts(ctx context.Context, firmID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total, active, exited int64
		base := tx.Model(&entity.CompanyPEInvestment{}).Where("pe_firm_id = ?", firmID)
		if err := base.Count(&total).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.CompanyPEInvestment{}).
			Where("pe_firm_id = ? AND computed_status = ?", firmID, entity.StatusActive).
			Count(&active).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.CompanyPEInvestment{}).
			Where("pe_firm_id = ? AND computed_status = ?", firmID, entity.StatusExit).
			Count(&exited).Error; err != nil {
			return err
		}
		return tx.Model(&entity.PEFirm{}).Where("id = ?", firmID).Updates(map[string]interface{}{
			"total_companies":         total,
			"current_portfolio_count": active,
			"exited_portfolio_count":  exited,
		}).Error
	})
}

// FindAll retrieves all firms.
func (r *peFirmRepository) FindAll(ctx context.Context) ([]entity.PEFirm, error) {
	var firms []entity.PEFirm
	if err := r.db.WithContext(ctx).Order("name").Find(&firms).Error; err != nil {
		return nil, err
	}
	return firms, nil
}
