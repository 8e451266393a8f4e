package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pe-portfolio-aggregator/internal/entity"
	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/internal/pipeline/repository"
	"pe-portfolio-aggregator/internal/pipeline/scraper"
	"pe-portfolio-aggregator/internal/pipeline/service"
	"pe-portfolio-aggregator/pkg/database"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/redis"
	"pe-portfolio-aggregator/pkg/telegram"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var (
	configPath string
	firmName   string
)

// app bundles everything a pipeline subcommand needs.
type app struct {
	ctx        context.Context
	logger     *logger.Logger
	pipeline   service.PipelineService
	enrich     service.EnrichService
	categorize service.CategorizeService
	tags       service.TagService
	snapshots  *scraper.SnapshotStore
	cleanup    func()
}

// buildApp wires the full dependency graph. Redis, Telegram and the
// model classifier are optional and drop out when unconfigured.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.NewDB(database.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if sqlDB, err := db.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = appLogger.Sync()
	}

	// Postgres schemas come from cmd/migrate; SQLite is bootstrapped
	// in-process.
	if cfg.Database.Driver != "postgres" {
		if err := entity.AutoMigrate(db.DB); err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to migrate database schema: %w", err)
		}
	}

	var redisClient *goredis.Client
	if cfg.Redis.Host != "" {
		rc, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Warn("Redis unavailable, cache invalidation disabled", logger.ErrorField(err))
		} else {
			redisClient = rc.Client
		}
	}

	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Warn("Telegram unavailable, run summaries disabled", logger.ErrorField(err))
			notifier = nil
		}
	}

	snapshotDir := cfg.Pipeline.SnapshotDir
	if snapshotDir == "" {
		snapshotDir = "snapshots"
	}
	snapshots, err := scraper.NewSnapshotStore(snapshotDir)
	if err != nil {
		cleanup()
		return nil, err
	}

	companyRepo := repository.NewCompanyRepository(db.DB)
	firmRepo := repository.NewPEFirmRepository(db.DB)
	investmentRepo := repository.NewInvestmentRepository(db.DB)
	tagRepo := repository.NewTagRepository(db.DB)
	runRepo := repository.NewScrapeRunRepository(db.DB)

	crunchbase := repository.NewCrunchbaseRepository(cfg, appLogger)
	serper := repository.NewSerperRepository(cfg, appLogger)
	swarm := repository.NewSwarmRepository(cfg, appLogger)
	classifier, err := repository.NewIndustryClassifier(cfg, appLogger)
	if err != nil {
		cleanup()
		return nil, err
	}

	importSvc := service.NewImportService(companyRepo, firmRepo, investmentRepo, runRepo, appLogger)
	enrichSvc := service.NewEnrichService(cfg, companyRepo, investmentRepo, crunchbase, serper, swarm, appLogger)
	categorizeSvc := service.NewCategorizeService(companyRepo, investmentRepo, classifier, appLogger)
	tagSvc := service.NewTagService(companyRepo, investmentRepo, tagRepo, appLogger)
	pipelineSvc := service.NewPipelineService(cfg, importSvc, enrichSvc, categorizeSvc, tagSvc,
		firmRepo, runRepo, snapshots, redisClient, notifier, appLogger)

	return &app{
		ctx:        ctx,
		logger:     appLogger,
		pipeline:   pipelineSvc,
		enrich:     enrichSvc,
		categorize: categorizeSvc,
		tags:       tagSvc,
		snapshots:  snapshots,
		cleanup:    cleanup,
	}, nil
}

func withApp(run func(a *app) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := buildApp(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize pipeline service: %v", err)
		}
		defer a.cleanup()

		if err := run(a); err != nil {
			a.logger.Fatal("Command failed", logger.ErrorField(err))
		}
	}
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape firm portfolios and write snapshot files",
	Run: withApp(func(a *app) error {
		scrapers := scraper.All(a.logger)
		if firmName != "" {
			s := scraper.ByName(firmName, a.logger)
			if s == nil {
				return fmt.Errorf("no scraper registered for firm %q", firmName)
			}
			scrapers = []scraper.Scraper{s}
		}
		for _, s := range scrapers {
			started := time.Now()
			companies, err := s.Scrape(a.ctx)
			if err != nil {
				a.logger.Error("Scrape failed", logger.ErrorField(err), logger.StringField("pe_firm", s.FirmName()))
				continue
			}
			path, err := a.snapshots.Write(dto.PortfolioSnapshot{
				PEFirm:         s.FirmName(),
				ExtractionDate: started,
				TotalCompanies: len(companies),
				Companies:      companies,
			})
			if err != nil {
				a.logger.Error("Failed to write snapshot", logger.ErrorField(err), logger.StringField("pe_firm", s.FirmName()))
				continue
			}
			a.logger.Info("Snapshot written", logger.StringField("path", path))
		}
		return nil
	}),
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the latest snapshot files into the database",
	Run: withApp(func(a *app) error {
		return a.pipeline.ImportSnapshots(a.ctx)
	}),
}

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fill blank company fields from external providers",
	Run: withApp(func(a *app) error {
		_, err := a.enrich.EnrichCompanies(a.ctx, 0)
		return err
	}),
}

var categorizeCmd = &cobra.Command{
	Use:   "categorize",
	Short: "Derive size, revenue tier and industry categories",
	Run: withApp(func(a *app) error {
		_, err := a.categorize.CategorizeCompanies(a.ctx, 0)
		return err
	}),
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Re-derive keyword tags for all companies",
	Run: withApp(func(a *app) error {
		_, err := a.tags.TagCompanies(a.ctx)
		return err
	}),
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline once",
	Run: withApp(func(a *app) error {
		if firmName != "" {
			return a.pipeline.RunFirm(a.ctx, firmName)
		}
		return a.pipeline.RunAll(a.ctx)
	}),
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pipeline on the configured cron schedule",
	Run: withApp(func(a *app) error {
		return a.pipeline.Start(a.ctx)
	}),
}

func main() {
	rootCmd := &cobra.Command{Use: "pipeline-service"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-pipeline.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&firmName, "firm", "f", "", "Restrict to a single PE firm")

	rootCmd.AddCommand(scrapeCmd, importCmd, enrichCmd, categorizeCmd, tagsCmd, runCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing pipeline-service CLI: %s\n", err)
		os.Exit(1)
	}
}
