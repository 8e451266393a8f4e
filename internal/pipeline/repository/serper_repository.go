package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/pkg/logger"
)

const defaultSerperBaseURL = "https://google.serper.dev/search"

var linkedinCompanyRe = regexp.MustCompile(`^https?://(?:[a-z]{2,3}\.)?linkedin\.com/company/[^/?#]+/?$`)

// SerperRepository finds a company's LinkedIn page through web search.
type SerperRepository interface {
	FindLinkedInURL(ctx context.Context, companyName string) (string, error)
}

type serperRepository struct {
	client *http.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewSerperRepository creates a new SerperDev search client.
func NewSerperRepository(cfg *config.Config, log *logger.Logger) SerperRepository {
	return &serperRepository{
		client: &http.Client{Timeout: 30 * time.Second},
		cfg:    cfg,
		logger: log,
	}
}

func (r *serperRepository) baseURL() string {
	if r.cfg.Serper.BaseURL != "" {
		return r.cfg.Serper.BaseURL
	}
	return defaultSerperBaseURL
}

// FindLinkedInURL searches site:linkedin.com/company for the name and
// returns the first company-page hit. When search yields nothing it
// falls back to probing the slugged URL directly. Returns "" when no
// page can be confirmed.
func (r *serperRepository) FindLinkedInURL(ctx context.Context, companyName string) (string, error) {
	payload := dto.SerperSearchRequest{
		Q:   fmt.Sprintf("site:linkedin.com/company %q", companyName),
		Num: 5,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL(), bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("X-API-KEY", r.cfg.Serper.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Serper API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.logger.Error("Received non-OK response from Serper API",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("company", companyName),
		)
		return "", fmt.Errorf("received non-OK response from Serper API: %d - %s", resp.StatusCode, string(body))
	}

	var searchResp dto.SerperSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	for _, result := range searchResp.Organic {
		link := strings.TrimSuffix(result.Link, "/")
		if linkedinCompanyRe.MatchString(link) {
			return link, nil
		}
	}

	return r.probeSlug(ctx, companyName)
}

// probeSlug checks whether linkedin.com/company/<slugged-name> exists.
func (r *serperRepository) probeSlug(ctx context.Context, companyName string) (string, error) {
	slug := strings.Trim(nonAlphanumericSlugRe.ReplaceAllString(strings.ToLower(companyName), "-"), "-")
	if slug == "" {
		return "", nil
	}
	candidate := "https://www.linkedin.com/company/" + slug

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, candidate, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create new http request: %w", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		// A probe failure is not an enrichment failure.
		return "", nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return candidate, nil
	}
	return "", nil
}

var nonAlphanumericSlugRe = regexp.MustCompile(`[^a-z0-9]+`)
