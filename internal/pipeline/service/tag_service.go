package service

import (
	"context"

	"pe-portfolio-aggregator/internal/classify"
	"pe-portfolio-aggregator/internal/pipeline/repository"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/utils"
)

// TagResult summarizes one tagging pass.
type TagResult struct {
	Processed int `json:"processed"`
	Tagged    int `json:"tagged"`
}

// TagService derives keyword tags for every company. Tags are replaced
// wholesale each pass so stale tags never linger after text changes.
type TagService interface {
	TagCompanies(ctx context.Context) (*TagResult, error)
}

// NewTagService creates a new tag service.
func NewTagService(
	companyRepo repository.CompanyRepository,
	investmentRepo repository.InvestmentRepository,
	tagRepo repository.TagRepository,
	log *logger.Logger,
) TagService {
	return &tagService{
		companyRepo:    companyRepo,
		investmentRepo: investmentRepo,
		tagRepo:        tagRepo,
		logger:         log,
	}
}

type tagService struct {
	companyRepo    repository.CompanyRepository
	investmentRepo repository.InvestmentRepository
	tagRepo        repository.TagRepository
	logger         *logger.Logger
}

// TagCompanies re-derives tags for all companies.
func (s *tagService) TagCompanies(ctx context.Context) (*TagResult, error) {
	companies, err := s.companyRepo.FindAllWithInvestments(ctx)
	if err != nil {
		return nil, err
	}

	result := &TagResult{}
	for i := range companies {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		company := &companies[i]
		result.Processed++

		// The scraped sector text lives on the investment rows.
		sector := ""
		for _, inv := range company.Investments {
			if inv.SectorPage != "" {
				sector = inv.SectorPage
				break
			}
		}

		tags := classify.ExtractTags(classify.TagInput{
			Name:             company.Name,
			Description:      company.Description,
			IndustryCategory: company.IndustryCategory,
			Sector:           sector,
			IsPublic:         company.IsPublic,
			RevenueTier:      company.RevenueTier,
		})
		if err := s.tagRepo.ReplaceForCompany(ctx, company.ID, tags); err != nil {
			s.logger.Error("Failed to replace tags",
				logger.ErrorField(err),
				logger.StringField("company", company.Name),
			)
			continue
		}
		if len(tags) > 0 {
			result.Tagged++
		}
	}

	s.logger.Info("Tagging complete",
		logger.IntField("processed", result.Processed),
		logger.IntField("tagged", result.Tagged),
	)
	return result, nil
}
