package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/pkg/logger"
)

const defaultSwarmBaseURL = "https://api.theswarm.com/v1"

// SwarmRepository resolves a company website domain to an ownership
// profile, including public-listing signals.
type SwarmRepository interface {
	GetCompanyProfile(ctx context.Context, websiteDomain string) (*dto.SwarmProfile, error)
}

type swarmRepository struct {
	client *http.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewSwarmRepository creates a new TheSwarm API client.
func NewSwarmRepository(cfg *config.Config, log *logger.Logger) SwarmRepository {
	return &swarmRepository{
		client: &http.Client{Timeout: 30 * time.Second},
		cfg:    cfg,
		logger: log,
	}
}

func (r *swarmRepository) baseURL() string {
	if r.cfg.Swarm.BaseURL != "" {
		return r.cfg.Swarm.BaseURL
	}
	return defaultSwarmBaseURL
}

// GetCompanyProfile fetches the company record keyed by website domain.
// Returns nil when the domain is unknown to the provider.
func (r *swarmRepository) GetCompanyProfile(ctx context.Context, websiteDomain string) (*dto.SwarmProfile, error) {
	domain := normalizeDomain(websiteDomain)
	if domain == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/companies/by-domain/%s", r.baseURL(), url.PathEscape(domain))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.Swarm.APIKey))
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Swarm API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.logger.Error("Received non-OK response from Swarm API",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("domain", domain),
		)
		return nil, fmt.Errorf("received non-OK response from Swarm API: %d - %s", resp.StatusCode, string(body))
	}

	var company dto.SwarmCompanyResponse
	if err := json.NewDecoder(resp.Body).Decode(&company); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	profile := &dto.SwarmProfile{
		Industry:      company.Industry,
		IsPublic:      company.IsPublic,
		IPODate:       company.IPODate,
		StockExchange: company.StockExchange,
		Summary:       company.Summary,
	}
	// Some records flag public ownership only in the detailed status.
	if !profile.IsPublic && strings.Contains(strings.ToLower(company.OwnershipStatusDetailed), "public") {
		profile.IsPublic = true
	}
	return profile, nil
}

// normalizeDomain strips scheme, www prefix and path from a website URL.
func normalizeDomain(website string) string {
	s := strings.TrimSpace(strings.ToLower(website))
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	if idx := strings.IndexAny(s, "/?#"); idx >= 0 {
		s = s[:idx]
	}
	return s
}
