package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pe-portfolio-aggregator/internal/api/config"
	delivery "pe-portfolio-aggregator/internal/api/delivery/http"
	_ "pe-portfolio-aggregator/internal/api/docs"
	"pe-portfolio-aggregator/internal/api/repository"
	"pe-portfolio-aggregator/internal/api/service"
	"pe-portfolio-aggregator/internal/entity"
	"pe-portfolio-aggregator/pkg/database"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting API Service", logger.Field("name", cfg.App.Name))

	// Initialize database
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
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Postgres schemas come from cmd/migrate; SQLite is bootstrapped
	// in-process.
	if cfg.Database.Driver != "postgres" {
		if err := entity.AutoMigrate(db.DB); err != nil {
			appLogger.Fatal("Failed to migrate database schema", logger.ErrorField(err))
		}
	}

	// Initialize Redis; the API degrades to uncached when disabled.
	var redisClient *goredis.Client
	if cfg.Cache.Enabled {
		rc, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer rc.Close()
		redisClient = rc.Client
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db.DB)
	investmentRepo := repository.NewInvestmentRepository(db.DB)
	statsRepo := repository.NewStatsRepository(db.DB)

	// Initialize services
	companySvc := service.NewCompanyService(companyRepo, appLogger)
	investmentSvc := service.NewInvestmentService(investmentRepo, appLogger)
	statsSvc := service.NewStatsService(cfg, statsRepo, redisClient, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	// Initialize handlers and routes
	apiGroup := e.Group("/api")

	companyHandler := delivery.NewCompanyHandler(companySvc, cfg.API.AdminAPIKey, appLogger)
	companyHandler.RegisterRoutes(apiGroup.Group("/companies"))

	investmentHandler := delivery.NewInvestmentHandler(investmentSvc, appLogger)
	investmentHandler.RegisterRoutes(apiGroup.Group("/investments"))

	statsHandler := delivery.NewStatsHandler(statsSvc, appLogger)
	statsHandler.RegisterRoutes(apiGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title PE Portfolio Aggregator API
// @version 1.0
// @description REST API over aggregated PE/VC portfolio company data.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
