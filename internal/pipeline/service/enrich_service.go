package service

import (
	"context"
	"sync"
	"time"

	"pe-portfolio-aggregator/internal/classify"
	"pe-portfolio-aggregator/internal/entity"
	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/internal/pipeline/repository"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/utils"
)

// EnrichResult summarizes one enrichment pass.
type EnrichResult struct {
	Processed int `json:"processed"`
	Enriched  int `json:"enriched"`
	Failed    int `json:"failed"`
}

// EnrichService fills blank company fields from external providers:
// Crunchbase for firmographics, SerperDev for the LinkedIn page, Swarm
// for public-listing state. Existing values are never overwritten.
type EnrichService interface {
	EnrichCompanies(ctx context.Context, limit int) (*EnrichResult, error)
}

// NewEnrichService creates a new enrichment service. Any provider may
// be nil, in which case its fields are skipped.
func NewEnrichService(
	cfg *config.Config,
	companyRepo repository.CompanyRepository,
	investmentRepo repository.InvestmentRepository,
	crunchbase repository.CrunchbaseRepository,
	serper repository.SerperRepository,
	swarm repository.SwarmRepository,
	log *logger.Logger,
) EnrichService {
	return &enrichService{
		cfg:            cfg,
		companyRepo:    companyRepo,
		investmentRepo: investmentRepo,
		crunchbase:     crunchbase,
		serper:         serper,
		swarm:          swarm,
		logger:         log,
	}
}

type enrichService struct {
	cfg            *config.Config
	companyRepo    repository.CompanyRepository
	investmentRepo repository.InvestmentRepository
	crunchbase     repository.CrunchbaseRepository
	serper         repository.SerperRepository
	swarm          repository.SwarmRepository
	logger         *logger.Logger
}

// EnrichCompanies processes companies with blank fields in concurrent
// batches, pausing between batches to stay under provider rate limits.
func (s *enrichService) EnrichCompanies(ctx context.Context, limit int) (*EnrichResult, error) {
	companies, err := s.companyRepo.FindNeedingEnrichment(ctx, limit)
	if err != nil {
		return nil, err
	}

	batchSize := s.cfg.Enrich.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}
	concurrency := s.cfg.Enrich.MaxConcurrency
	if concurrency <= 0 {
		concurrency = 3
	}
	batchDelay, err := time.ParseDuration(s.cfg.Enrich.BatchDelay)
	if err != nil {
		batchDelay = 2 * time.Second
	}

	result := &EnrichResult{}
	var mu sync.Mutex

	for start := 0; start < len(companies); start += batchSize {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		end := start + batchSize
		if end > len(companies) {
			end = len(companies)
		}
		batch := companies[start:end]

		var wg sync.WaitGroup
		sem := make(chan struct{}, concurrency)
		for i := range batch {
			company := &batch[i]
			wg.Add(1)
			sem <- struct{}{}
			utils.GoSafe(func() {
				defer wg.Done()
				defer func() { <-sem }()

				enriched, err := s.enrichCompany(ctx, company)
				mu.Lock()
				defer mu.Unlock()
				result.Processed++
				if err != nil {
					result.Failed++
					return
				}
				if enriched {
					result.Enriched++
				}
			})
		}
		wg.Wait()

		if end < len(companies) {
			select {
			case <-ctx.Done():
			case <-time.After(batchDelay):
			}
		}
	}

	s.logger.Info("Enrichment complete",
		logger.IntField("processed", result.Processed),
		logger.IntField("enriched", result.Enriched),
		logger.IntField("failed", result.Failed),
	)
	return result, nil
}

// enrichCompany fills the company's blank fields and persists when
// anything changed.
func (s *enrichService) enrichCompany(ctx context.Context, company *entity.Company) (bool, error) {
	changed := false
	foundedYear := ""

	if s.crunchbase != nil && (company.Description == "" || company.RevenueRange == "" || company.EmployeeCount == "" || company.Country == "") {
		details, err := s.crunchbase.FindCompanyDetails(ctx, company.Name)
		if err != nil {
			s.logger.Error("Crunchbase lookup failed", logger.ErrorField(err), logger.StringField("company", company.Name))
		} else if details != nil {
			foundedYear = details.FoundedYear
			if company.Description == "" && details.Description != "" {
				company.Description = details.Description
				changed = true
			}
			if company.RevenueRange == "" && details.RevenueRange != "" {
				company.RevenueRange = details.RevenueRange
				changed = true
			}
			if company.EmployeeCount == "" && details.EmployeeCount != "" {
				company.EmployeeCount = details.EmployeeCount
				changed = true
			}
			if company.Country == "" && details.Headquarters != "" {
				city, stateRegion, country := classify.ParseLocation(details.Headquarters)
				company.City = city
				company.StateRegion = stateRegion
				company.Country = country
				changed = true
			}
		}
	}

	if s.serper != nil && company.LinkedinURL == "" {
		url, err := s.serper.FindLinkedInURL(ctx, company.Name)
		if err != nil {
			s.logger.Error("LinkedIn search failed", logger.ErrorField(err), logger.StringField("company", company.Name))
		} else if url != "" {
			company.LinkedinURL = url
			changed = true
		}
	}

	if s.swarm != nil && company.Website != "" && !company.IsPublic {
		profile, err := s.swarm.GetCompanyProfile(ctx, company.Website)
		if err != nil {
			s.logger.Error("Swarm lookup failed", logger.ErrorField(err), logger.StringField("company", company.Name))
		} else if profile != nil {
			if profile.IsPublic {
				company.IsPublic = true
				if company.IPOExchange == "" && profile.StockExchange != "" {
					company.IPOExchange = profile.StockExchange
				}
				if company.IPODate == nil && profile.IPODate != "" {
					if ipoDate, err := time.Parse("2006-01-02", profile.IPODate); err == nil {
						company.IPODate = &ipoDate
					}
				}
				changed = true
			}
			if company.Description == "" && profile.Summary != "" {
				company.Description = profile.Summary
				changed = true
			}
			if company.IndustryCategory == "" && profile.Industry != "" {
				company.IndustryCategory = classify.StandardizeIndustry(profile.Industry)
				changed = true
			}
		}
	}

	// A founded year stands in for a missing investment year, matching
	// how the per-firm enrichers backfill it.
	if foundedYear != "" && s.investmentRepo != nil {
		backfilled, err := s.backfillInvestmentYears(ctx, company.ID, foundedYear)
		if err != nil {
			s.logger.Error("Investment year backfill failed", logger.ErrorField(err), logger.StringField("company", company.Name))
		} else if backfilled > 0 {
			changed = true
		}
	}

	if !changed {
		return false, nil
	}
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return false, err
	}
	return true, nil
}

// backfillInvestmentYears fills blank investment years on the
// company's investment rows with the founded year and derives the
// stage label from it.
func (s *enrichService) backfillInvestmentYears(ctx context.Context, companyID uint, year string) (int, error) {
	investments, err := s.investmentRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return 0, err
	}
	backfilled := 0
	for i := range investments {
		inv := &investments[i]
		if inv.InvestmentYear != "" {
			continue
		}
		inv.InvestmentYear = year
		inv.InvestmentStage = classify.CategorizeInvestmentStage(year)
		if err := s.investmentRepo.Update(ctx, inv); err != nil {
			return backfilled, err
		}
		backfilled++
	}
	return backfilled, nil
}
