package service

import (
	"context"
	"time"

	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/internal/pipeline/repository"
	"pe-portfolio-aggregator/internal/pipeline/scraper"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/telegram"
	"pe-portfolio-aggregator/pkg/utils"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// apiCachePattern matches the API service's response cache keys.
const apiCachePattern = "api:cache:*"

// PipelineService orchestrates the full pass: scrape every firm, write
// snapshots, import, enrich, categorize, tag. After a run the API
// response cache is flushed and a summary goes out to Telegram.
type PipelineService interface {
	RunAll(ctx context.Context) error
	RunFirm(ctx context.Context, firmName string) error
	ImportSnapshots(ctx context.Context) error
	Start(ctx context.Context) error
}

// NewPipelineService creates the orchestrating service. Redis client
// and notifier may be nil.
func NewPipelineService(
	cfg *config.Config,
	importSvc ImportService,
	enrichSvc EnrichService,
	categorizeSvc CategorizeService,
	tagSvc TagService,
	firmRepo repository.PEFirmRepository,
	runRepo repository.ScrapeRunRepository,
	snapshots *scraper.SnapshotStore,
	redisClient *redis.Client,
	notifier telegram.Notifier,
	log *logger.Logger,
) PipelineService {
	return &pipelineService{
		cfg:           cfg,
		importSvc:     importSvc,
		enrichSvc:     enrichSvc,
		categorizeSvc: categorizeSvc,
		tagSvc:        tagSvc,
		firmRepo:      firmRepo,
		runRepo:       runRepo,
		snapshots:     snapshots,
		redisClient:   redisClient,
		notifier:      notifier,
		logger:        log,
	}
}

type pipelineService struct {
	cfg           *config.Config
	importSvc     ImportService
	enrichSvc     EnrichService
	categorizeSvc CategorizeService
	tagSvc        TagService
	firmRepo      repository.PEFirmRepository
	runRepo       repository.ScrapeRunRepository
	snapshots     *scraper.SnapshotStore
	redisClient   *redis.Client
	notifier      telegram.Notifier
	logger        *logger.Logger
}

// RunAll scrapes and imports every registered firm, then runs the
// enrichment, categorization and tagging stages.
func (s *pipelineService) RunAll(ctx context.Context) error {
	for _, sc := range scraper.All(s.logger) {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		if err := s.scrapeAndImport(ctx, sc); err != nil {
			s.logger.Error("Firm pipeline failed",
				logger.ErrorField(err),
				logger.StringField("pe_firm", sc.FirmName()),
			)
		}
	}
	return s.runDerivedStages(ctx)
}

// RunFirm scrapes and imports a single firm, then runs the derived
// stages.
func (s *pipelineService) RunFirm(ctx context.Context, firmName string) error {
	sc := scraper.ByName(firmName, s.logger)
	if sc == nil {
		s.logger.Error("No scraper registered for firm", logger.StringField("pe_firm", firmName))
		return nil
	}
	if err := s.scrapeAndImport(ctx, sc); err != nil {
		return err
	}
	return s.runDerivedStages(ctx)
}

// Start runs the pipeline on the configured cron schedule until the
// context is canceled.
func (s *pipelineService) Start(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(s.cfg.Pipeline.CronSpec, func() {
		if err := s.RunAll(ctx); err != nil {
			s.logger.Error("Scheduled pipeline run failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	s.logger.Info("Pipeline scheduler started", logger.StringField("cron", s.cfg.Pipeline.CronSpec))
	c.Start()
	<-ctx.Done()

	stopCtx := c.Stop()
	<-stopCtx.Done()
	s.logger.Info("Pipeline scheduler stopped")
	return nil
}

func (s *pipelineService) scrapeAndImport(ctx context.Context, sc scraper.Scraper) error {
	firmName := sc.FirmName()
	started := time.Now()

	companies, err := sc.Scrape(ctx)
	if err != nil {
		return err
	}

	snapshot := dto.PortfolioSnapshot{
		PEFirm:         firmName,
		ExtractionDate: started,
		TotalCompanies: len(companies),
		Companies:      companies,
	}
	if s.snapshots != nil {
		if path, err := s.snapshots.Write(snapshot); err != nil {
			s.logger.Error("Failed to write snapshot", logger.ErrorField(err), logger.StringField("pe_firm", firmName))
		} else {
			s.logger.Info("Snapshot written", logger.StringField("path", path))
		}
	}

	if _, err := s.importSvc.ImportSnapshot(ctx, snapshot); err != nil {
		return err
	}

	// Record how long the scrape-and-import pass took.
	if firm, err := s.firmRepo.FindByName(ctx, firmName); err == nil && firm != nil {
		firm.ExtractionTimeMinutes = int(time.Since(started).Minutes())
		if err := s.firmRepo.Update(ctx, firm); err != nil {
			s.logger.Error("Failed to record extraction time", logger.ErrorField(err))
		}
	}
	return nil
}

// runDerivedStages enriches, categorizes and tags, then flushes the API
// cache and sends the run summary.
func (s *pipelineService) runDerivedStages(ctx context.Context) error {
	if _, err := s.enrichSvc.EnrichCompanies(ctx, 0); err != nil {
		s.logger.Error("Enrichment stage failed", logger.ErrorField(err))
	}
	if _, err := s.categorizeSvc.CategorizeCompanies(ctx, 0); err != nil {
		s.logger.Error("Categorization stage failed", logger.ErrorField(err))
	}
	if _, err := s.tagSvc.TagCompanies(ctx); err != nil {
		s.logger.Error("Tagging stage failed", logger.ErrorField(err))
	}

	s.invalidateAPICache(ctx)
	s.notifyRunSummary(ctx)
	return nil
}

// invalidateAPICache deletes the API service's cached responses so
// freshly imported data is visible immediately.
func (s *pipelineService) invalidateAPICache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	iter := s.redisClient.Scan(ctx, 0, apiCachePattern, 100).Iterator()
	deleted := 0
	for iter.Next(ctx) {
		if err := s.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Error("Failed to delete cache key", logger.ErrorField(err), logger.StringField("key", iter.Val()))
			continue
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		s.logger.Error("Cache scan failed", logger.ErrorField(err))
		return
	}
	s.logger.Info("API cache invalidated", logger.IntField("keys", deleted))
}

func (s *pipelineService) notifyRunSummary(ctx context.Context) {
	if s.notifier == nil || s.runRepo == nil {
		return
	}
	runs, err := s.runRepo.FindRecent(ctx, len(scraper.All(s.logger)))
	if err != nil {
		s.logger.Error("Failed to load recent runs", logger.ErrorField(err))
		return
	}
	if len(runs) == 0 {
		return
	}
	if err := s.notifier.SendMessage(telegram.FormatScrapeRunSummary(runs)); err != nil {
		s.logger.Error("Failed to send Telegram summary", logger.ErrorField(err))
	}
}

// ImportSnapshots replays the latest stored snapshot of every firm,
// skipping the scrape stage entirely.
func (s *pipelineService) ImportSnapshots(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	paths, err := s.snapshots.Latest()
	if err != nil {
		return err
	}
	for _, path := range paths {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		snapshot, err := s.snapshots.Read(path)
		if err != nil {
			s.logger.Error("Failed to read snapshot", logger.ErrorField(err), logger.StringField("path", path))
			continue
		}
		if _, err := s.importSvc.ImportSnapshot(ctx, snapshot); err != nil {
			s.logger.Error("Failed to import snapshot", logger.ErrorField(err), logger.StringField("path", path))
		}
	}
	return s.runDerivedStages(ctx)
}
