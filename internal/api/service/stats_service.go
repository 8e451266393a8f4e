package service

import (
	"context"
	"encoding/json"
	"time"

	"pe-portfolio-aggregator/internal/api/config"
	"pe-portfolio-aggregator/internal/api/dto"
	"pe-portfolio-aggregator/internal/api/repository"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the aggregate endpoints. The pipeline service deletes
// api:cache:* after each run.
const (
	statsCacheKey   = "api:cache:stats"
	filtersCacheKey = "api:cache:filters"
)

// StatsService serves the dashboard aggregate endpoints, cache-aside
// over Redis.
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	GetFilters(ctx context.Context) (*dto.FiltersResponse, error)
	ListFirms(ctx context.Context) ([]dto.PEFirmResponse, error)
}

// NewStatsService creates a new stats service. The Redis client may be
// nil, disabling the cache.
func NewStatsService(cfg *config.Config, statsRepo repository.StatsRepository, redisClient *redis.Client, log *logger.Logger) StatsService {
	ttl, err := time.ParseDuration(cfg.Cache.TTL)
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if !cfg.Cache.Enabled {
		redisClient = nil
	}
	return &statsService{
		statsRepo:   statsRepo,
		redisClient: redisClient,
		cacheTTL:    ttl,
		logger:      log,
	}
}

type statsService struct {
	statsRepo   repository.StatsRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *logger.Logger
}

// GetStats returns the aggregate dashboard numbers.
func (s *statsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	var stats dto.StatsResponse
	if s.cacheGet(ctx, statsCacheKey, &stats) {
		return &stats, nil
	}
	fresh, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, statsCacheKey, fresh)
	return fresh, nil
}

// GetFilters returns the distinct filter values.
func (s *statsService) GetFilters(ctx context.Context) (*dto.FiltersResponse, error) {
	var filters dto.FiltersResponse
	if s.cacheGet(ctx, filtersCacheKey, &filters) {
		return &filters, nil
	}
	fresh, err := s.statsRepo.GetFilters(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, filtersCacheKey, fresh)
	return fresh, nil
}

// ListFirms returns every firm with its portfolio counters.
func (s *statsService) ListFirms(ctx context.Context) ([]dto.PEFirmResponse, error) {
	firms, err := s.statsRepo.FindAllFirms(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PEFirmResponse, 0, len(firms))
	for i := range firms {
		resp = append(resp, dto.NewPEFirmResponse(&firms[i]))
	}
	return resp, nil
}

func (s *statsService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.redisClient == nil {
		return false
	}
	data, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Error("Failed to decode cached payload", logger.ErrorField(err), logger.StringField("key", key))
		return false
	}
	return true
}

func (s *statsService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.redisClient == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Error("Failed to cache payload", logger.ErrorField(err), logger.StringField("key", key))
	}
}
