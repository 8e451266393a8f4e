package config

import (
	"pe-portfolio-aggregator/pkg/config"
)

// Crunchbase holds Crunchbase API client configuration.
type Crunchbase struct {
	APIKey            string  `mapstructure:"api_key"`
	BaseURL           string  `mapstructure:"base_url"`
	RequestsPerMinute float64 `mapstructure:"requests_per_minute"`
}

// Swarm holds TheSwarm API client configuration.
type Swarm struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// Serper holds SerperDev search API configuration.
type Serper struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// AI holds the industry classifier configuration. Provider selects the
// backend: "openai" or "gemini".
type AI struct {
	Provider           string `mapstructure:"provider"`
	OpenAIAPIKey       string `mapstructure:"openai_api_key"`
	OpenAIModel        string `mapstructure:"openai_model"`
	GeminiAPIKey       string `mapstructure:"gemini_api_key"`
	GeminiModel        string `mapstructure:"gemini_model"`
	MaxTokensPerMinute int    `mapstructure:"max_tokens_per_minute"`
	RequestsPerMinute  int    `mapstructure:"requests_per_minute"`
}

// Enrich holds enrichment batching configuration.
type Enrich struct {
	BatchSize      int    `mapstructure:"batch_size"`
	MaxConcurrency int    `mapstructure:"max_concurrency"`
	BatchDelay     string `mapstructure:"batch_delay"`
}

// Pipeline holds pipeline run configuration.
type Pipeline struct {
	SnapshotDir     string `mapstructure:"snapshot_dir"`
	ImportBatchSize int    `mapstructure:"import_batch_size"`
	CronSpec        string `mapstructure:"cron_spec"`
}

// Config holds the full configuration for the pipeline service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	Telegram   config.Telegram `mapstructure:"telegram"`
	Crunchbase Crunchbase      `mapstructure:"crunchbase"`
	Swarm      Swarm           `mapstructure:"swarm"`
	Serper     Serper          `mapstructure:"serper"`
	AI         AI              `mapstructure:"ai"`
	Enrich     Enrich          `mapstructure:"enrich"`
	Pipeline   Pipeline        `mapstructure:"pipeline"`
}

// Load loads the pipeline service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
