package repository

import (
	"context"

	"pe-portfolio-aggregator/internal/entity"

	"gorm.io/gorm"
)

// ScrapeRunRepository defines the interface for scrape run records.
type ScrapeRunRepository interface {
	Create(ctx context.Context, run *entity.ScrapeRun) error
	Update(ctx context.Context, run *entity.ScrapeRun) error
	FindRecent(ctx context.Context, limit int) ([]entity.ScrapeRun, error)
}

// NewScrapeRunRepository creates a new GORM-based scrape run repository.
func NewScrapeRunRepository(db *gorm.DB) ScrapeRunRepository {
	return &scrapeRunRepository{db: db}
}

type scrapeRunRepository struct {
	db *gorm.DB
}

// Create records the start of a scrape run.
func (r *scrapeRunRepository) Create(ctx context.Context, run *entity.ScrapeRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// Update saves the run record.
func (r *scrapeRunRepository) Update(ctx context.Context, run *entity.ScrapeRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// FindRecent retrieves the most recent runs, newest first.
func (r *scrapeRunRepository) FindRecent(ctx context.Context, limit int) ([]entity.ScrapeRun, error) {
	var runs []entity.ScrapeRun
	q := r.db.WithContext(ctx).Order("started_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
