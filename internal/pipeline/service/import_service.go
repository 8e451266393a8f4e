package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pe-portfolio-aggregator/internal/classify"
	"pe-portfolio-aggregator/internal/entity"
	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/internal/pipeline/repository"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/utils"

	"gorm.io/datatypes"
)

// ImportResult summarizes one firm's import pass.
type ImportResult struct {
	PEFirm           string   `json:"pe_firm"`
	CompaniesFound   int      `json:"companies_found"`
	CompaniesAdded   int      `json:"companies_added"`
	CompaniesUpdated int      `json:"companies_updated"`
	FailedCompanies  []string `json:"failed_companies,omitempty"`
}

// ImportService merges scraped portfolio snapshots into the database.
// Companies are deduplicated by normalized name across firms; a company
// already present keeps its existing field values except the website,
// which each fresh scrape refreshes. Investment rows are unique per
// (company, firm) and have their status recomputed on every pass.
type ImportService interface {
	ImportSnapshot(ctx context.Context, snapshot dto.PortfolioSnapshot) (*ImportResult, error)
}

// NewImportService creates a new import service.
func NewImportService(
	companyRepo repository.CompanyRepository,
	firmRepo repository.PEFirmRepository,
	investmentRepo repository.InvestmentRepository,
	runRepo repository.ScrapeRunRepository,
	log *logger.Logger,
) ImportService {
	return &importService{
		companyRepo:    companyRepo,
		firmRepo:       firmRepo,
		investmentRepo: investmentRepo,
		runRepo:        runRepo,
		logger:         log,
	}
}

type importService struct {
	companyRepo    repository.CompanyRepository
	firmRepo       repository.PEFirmRepository
	investmentRepo repository.InvestmentRepository
	runRepo        repository.ScrapeRunRepository
	logger         *logger.Logger
}

// ImportSnapshot upserts every company in the snapshot and records the
// run outcome.
func (s *importService) ImportSnapshot(ctx context.Context, snapshot dto.PortfolioSnapshot) (*ImportResult, error) {
	firm, err := s.firmRepo.FindOrCreate(ctx, snapshot.PEFirm)
	if err != nil {
		return nil, err
	}

	run := &entity.ScrapeRun{
		PEFirmName:     snapshot.PEFirm,
		Status:         entity.ScrapeRunStatusSuccess,
		CompaniesFound: len(snapshot.Companies),
		StartedAt:      time.Now(),
	}
	if s.runRepo != nil {
		if err := s.runRepo.Create(ctx, run); err != nil {
			s.logger.Error("Failed to record scrape run", logger.ErrorField(err))
		}
	}

	result := &ImportResult{
		PEFirm:         snapshot.PEFirm,
		CompaniesFound: len(snapshot.Companies),
	}

	for _, scraped := range snapshot.Companies {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		added, err := s.importCompany(ctx, firm.ID, scraped)
		if err != nil {
			s.logger.Error("Failed to import company",
				logger.ErrorField(err),
				logger.StringField("company", scraped.Name),
				logger.StringField("pe_firm", snapshot.PEFirm),
			)
			result.FailedCompanies = append(result.FailedCompanies, scraped.Name)
			continue
		}
		if added {
			result.CompaniesAdded++
		} else {
			result.CompaniesUpdated++
		}
	}

	now := time.Now()
	firm.LastScraped = &now
	if err := s.firmRepo.Update(ctx, firm); err != nil {
		s.logger.Error("Failed to update firm", logger.ErrorField(err))
	}
	if err := s.firmRepo.RefreshCounts(ctx, firm.ID); err != nil {
		s.logger.Error("Failed to refresh firm counts", logger.ErrorField(err))
	}

	if s.runRepo != nil {
		run.CompaniesAdded = result.CompaniesAdded
		run.CompaniesUpdated = result.CompaniesUpdated
		run.FailedCompanies = result.FailedCompanies
		run.CompletedAt = &now
		if len(result.FailedCompanies) > 0 {
			run.Status = entity.ScrapeRunStatusPartial
		}
		if resultJSON, err := json.Marshal(result); err == nil {
			run.Result = datatypes.JSON(resultJSON)
		}
		if err := s.runRepo.Update(ctx, run); err != nil {
			s.logger.Error("Failed to finalize scrape run", logger.ErrorField(err))
		}
	}

	s.logger.Info("Import complete",
		logger.StringField("pe_firm", snapshot.PEFirm),
		logger.IntField("found", result.CompaniesFound),
		logger.IntField("added", result.CompaniesAdded),
		logger.IntField("updated", result.CompaniesUpdated),
		logger.IntField("failed", len(result.FailedCompanies)),
	)
	return result, nil
}

// importCompany upserts one scraped record. Returns true when a new
// company row was created.
func (s *importService) importCompany(ctx context.Context, firmID uint, scraped dto.ScrapedCompany) (bool, error) {
	name := strings.TrimSpace(scraped.Name)
	normalized := classify.NormalizeName(name)

	company, err := s.companyRepo.FindByNormalizedName(ctx, normalized)
	if err != nil {
		return false, err
	}

	city, stateRegion, country := classify.ParseLocation(scraped.Headquarters)
	ticker, exchange := classify.ExtractIPOInfo(scraped.ExitInfo)
	isPublic := ticker != ""

	added := false
	if company == nil {
		company = &entity.Company{
			Name:           name,
			NormalizedName: normalized,
			Description:    strings.TrimSpace(scraped.Description),
			Website:        scraped.Website,
			City:           city,
			StateRegion:    stateRegion,
			Country:        country,
			IsPublic:       isPublic,
			IPOTicker:      ticker,
			IPOExchange:    exchange,
		}
		if err := s.companyRepo.Create(ctx, company); err != nil {
			return false, err
		}
		added = true
	} else {
		// First writer wins for descriptive fields; the website is the
		// exception and tracks the latest scrape.
		changed := false
		if company.Website != scraped.Website && scraped.Website != "" {
			company.Website = scraped.Website
			changed = true
		}
		if company.Description == "" && scraped.Description != "" {
			company.Description = strings.TrimSpace(scraped.Description)
			changed = true
		}
		if company.Country == "" && country != "" {
			company.City = city
			company.StateRegion = stateRegion
			company.Country = country
			changed = true
		}
		if !company.IsPublic && isPublic {
			company.IsPublic = true
			company.IPOTicker = ticker
			company.IPOExchange = exchange
			changed = true
		}
		if changed {
			if err := s.companyRepo.Update(ctx, company); err != nil {
				return false, err
			}
		}
	}

	return added, s.upsertInvestment(ctx, company, firmID, scraped)
}

// upsertInvestment creates or refreshes the (company, firm) investment
// row. The computed status is re-derived every pass and stamped.
func (s *importService) upsertInvestment(ctx context.Context, company *entity.Company, firmID uint, scraped dto.ScrapedCompany) error {
	investment, err := s.investmentRepo.FindByCompanyAndFirm(ctx, company.ID, firmID)
	if err != nil {
		return err
	}

	exitType := ""
	if scraped.ExitInfo != "" {
		exitType = classifyExitType(scraped.ExitInfo)
	}
	computed := classify.NormalizeStatus(scraped.Status, exitType, company.IsPublic)
	now := time.Now()

	if investment == nil {
		investment = &entity.CompanyPEInvestment{
			CompanyID:         company.ID,
			PEFirmID:          firmID,
			RawStatus:         scraped.Status,
			ComputedStatus:    computed,
			InvestmentYear:    scraped.InvestmentYear,
			InvestmentStage:   classify.CategorizeInvestmentStage(scraped.InvestmentYear),
			ExitType:          exitType,
			ExitInfo:          scraped.ExitInfo,
			ExitYear:          classify.ExtractExitYear(scraped.ExitInfo),
			SourceURL:         scraped.URL,
			SectorPage:        scraped.SectorPage,
			DataArea:          scraped.DataArea,
			DataFund:          scraped.DataFund,
			StatusConfirmedAt: &now,
			LastScraped:       &now,
		}
		return s.investmentRepo.Create(ctx, investment)
	}

	investment.RawStatus = scraped.Status
	investment.ComputedStatus = computed
	investment.StatusConfirmedAt = &now
	investment.LastScraped = &now
	if investment.InvestmentYear == "" && scraped.InvestmentYear != "" {
		investment.InvestmentYear = scraped.InvestmentYear
		investment.InvestmentStage = classify.CategorizeInvestmentStage(scraped.InvestmentYear)
	}
	if investment.ExitInfo == "" && scraped.ExitInfo != "" {
		investment.ExitInfo = scraped.ExitInfo
		investment.ExitType = exitType
	}
	if investment.ExitYear == "" && investment.ExitInfo != "" {
		investment.ExitYear = classify.ExtractExitYear(investment.ExitInfo)
	}
	return s.investmentRepo.Update(ctx, investment)
}

// classifyExitType labels free-text exit info as IPO or Acquisition.
func classifyExitType(exitInfo string) string {
	lower := strings.ToLower(exitInfo)
	switch {
	case strings.Contains(lower, "ipo"):
		return "IPO"
	case strings.Contains(lower, "acquir"), strings.Contains(lower, "merged"):
		return "Acquisition"
	default:
		return "Exit"
	}
}
