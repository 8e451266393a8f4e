package service

import (
	"context"

	"pe-portfolio-aggregator/internal/classify"
	"pe-portfolio-aggregator/internal/pipeline/repository"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/utils"
)

// CategorizeResult summarizes one categorization pass.
type CategorizeResult struct {
	Processed        int `json:"processed"`
	SizeSet          int `json:"size_set"`
	RevenueSet       int `json:"revenue_set"`
	IndustrySet      int `json:"industry_set"`
	RevenuePredicted int `json:"revenue_predicted"`
	StageUpdated     int `json:"stage_updated"`
}

// CategorizeService derives the size, revenue tier, industry category
// and investment stage labels. Size and revenue come straight from the
// Crunchbase bracket codes; industry falls back from the configured
// model classifier to keyword matching on the scraped sector text.
type CategorizeService interface {
	CategorizeCompanies(ctx context.Context, limit int) (*CategorizeResult, error)
}

// NewCategorizeService creates a new categorization service. The
// classifier may be nil; keyword matching then covers industry.
func NewCategorizeService(
	companyRepo repository.CompanyRepository,
	investmentRepo repository.InvestmentRepository,
	classifier repository.IndustryClassifier,
	log *logger.Logger,
) CategorizeService {
	return &categorizeService{
		companyRepo:    companyRepo,
		investmentRepo: investmentRepo,
		classifier:     classifier,
		logger:         log,
	}
}

type categorizeService struct {
	companyRepo    repository.CompanyRepository
	investmentRepo repository.InvestmentRepository
	classifier     repository.IndustryClassifier
	logger         *logger.Logger
}

// CategorizeCompanies fills missing derived labels for companies with
// blanks, then backfills missing investment stages.
func (s *categorizeService) CategorizeCompanies(ctx context.Context, limit int) (*CategorizeResult, error) {
	companies, err := s.companyRepo.FindUncategorized(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := &CategorizeResult{}
	for i := range companies {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		company := &companies[i]
		result.Processed++
		changed := false

		if company.CompanySizeCategory == "" {
			if size := classify.CategorizeCompanySize(company.EmployeeCount); size != "" {
				company.CompanySizeCategory = size
				result.SizeSet++
				changed = true
			}
		}
		if company.RevenueTier == "" {
			if tier := classify.CategorizeRevenueTier(company.RevenueRange); tier != "" {
				company.RevenueTier = tier
				result.RevenueSet++
				changed = true
			}
		}
		if company.IndustryCategory == "" {
			industry := s.classifyIndustry(ctx, company.Name, company.Description)
			if industry != "" {
				company.IndustryCategory = industry
				result.IndustrySet++
				changed = true
			}
		}
		if company.PredictedRevenue == 0 {
			if predicted := classify.EstimatePredictedRevenue(company.EmployeeCount, company.IndustryCategory); predicted > 0 {
				company.PredictedRevenue = predicted
				result.RevenuePredicted++
				changed = true
			}
		}

		if changed {
			if err := s.companyRepo.Update(ctx, company); err != nil {
				s.logger.Error("Failed to save categorization",
					logger.ErrorField(err),
					logger.StringField("company", company.Name),
				)
				continue
			}
		}

		updated, err := s.backfillInvestmentStages(ctx, company.ID)
		if err != nil {
			s.logger.Error("Failed to backfill investment stages",
				logger.ErrorField(err),
				logger.StringField("company", company.Name),
			)
			continue
		}
		result.StageUpdated += updated
	}

	s.logger.Info("Categorization complete",
		logger.IntField("processed", result.Processed),
		logger.IntField("size_set", result.SizeSet),
		logger.IntField("revenue_set", result.RevenueSet),
		logger.IntField("industry_set", result.IndustrySet),
		logger.IntField("revenue_predicted", result.RevenuePredicted),
	)
	return result, nil
}

func (s *categorizeService) classifyIndustry(ctx context.Context, name, description string) string {
	if s.classifier != nil && description != "" {
		industry, err := s.classifier.ClassifyIndustry(ctx, name, description)
		if err == nil && industry != "" {
			return industry
		}
		if err != nil {
			s.logger.Error("Model classification failed, falling back to keywords",
				logger.ErrorField(err),
				logger.StringField("company", name),
			)
		}
	}
	if description == "" {
		return ""
	}
	return classify.StandardizeIndustry(description)
}

func (s *categorizeService) backfillInvestmentStages(ctx context.Context, companyID uint) (int, error) {
	investments, err := s.investmentRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return 0, err
	}
	updated := 0
	for i := range investments {
		inv := &investments[i]
		if inv.InvestmentStage != "" || inv.InvestmentYear == "" {
			continue
		}
		stage := classify.CategorizeInvestmentStage(inv.InvestmentYear)
		if stage == "" {
			continue
		}
		inv.InvestmentStage = stage
		if err := s.investmentRepo.Update(ctx, inv); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
