package repository

import (
	"context"

	"pe-portfolio-aggregator/internal/classify"
	"pe-portfolio-aggregator/internal/entity"

	"gorm.io/gorm"
)

// TagRepository defines the interface for company tag operations.
type TagRepository interface {
	ReplaceForCompany(ctx context.Context, companyID uint, tags []classify.Tag) error
	FindByCompany(ctx context.Context, companyID uint) ([]entity.CompanyTag, error)
}

// NewTagRepository creates a new GORM-based tag repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

type tagRepository struct {
	db *gorm.DB
}

// ReplaceForCompany swaps a company's tags for the given set in one
// transaction, so re-tagging never leaves stale rows behind.
func (r *tagRepository) ReplaceForCompany(ctx context.Context, companyID uint, tags []classify.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&entity.CompanyTag{}).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		rows := make([]entity.CompanyTag, 0, len(tags))
		for _, tag := range tags {
			rows = append(rows, entity.CompanyTag{
				CompanyID:   companyID,
				TagCategory: tag.Category,
				TagValue:    tag.Value,
			})
		}
		return tx.Create(&rows).Error
	})
}

// FindByCompany retrieves all tags for a company.
func (r *tagRepository) FindByCompany(ctx context.Context, companyID uint) ([]entity.CompanyTag, error) {
	var tags []entity.CompanyTag
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("tag_category, tag_value").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
