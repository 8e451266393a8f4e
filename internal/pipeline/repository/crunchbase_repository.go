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

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const defaultCrunchbaseBaseURL = "https://api.crunchbase.com/api/v4"

// CrunchbaseRepository resolves a company name to firmographic details.
type CrunchbaseRepository interface {
	FindCompanyDetails(ctx context.Context, companyName string) (*dto.CompanyDetails, error)
}

type crunchbaseRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	cache          *gocache.Cache
}

// NewCrunchbaseRepository creates a new Crunchbase API client. Lookups
// are memoized for the life of a run so duplicate names across firms
// cost one request.
func NewCrunchbaseRepository(cfg *config.Config, log *logger.Logger) CrunchbaseRepository {
	rpm := cfg.Crunchbase.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	return &crunchbaseRepository{
		client:         &http.Client{Timeout: 30 * time.Second},
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Limit(rpm/60.0), 1),
		cache:          gocache.New(1*time.Hour, 10*time.Minute),
	}
}

func (r *crunchbaseRepository) baseURL() string {
	if r.cfg.Crunchbase.BaseURL != "" {
		return r.cfg.Crunchbase.BaseURL
	}
	return defaultCrunchbaseBaseURL
}

// FindCompanyDetails resolves the name through autocomplete, then loads
// the top organization entity. Returns nil when no match is found.
func (r *crunchbaseRepository) FindCompanyDetails(ctx context.Context, companyName string) (*dto.CompanyDetails, error) {
	cacheKey := strings.ToLower(companyName)
	if cached, found := r.cache.Get(cacheKey); found {
		if details, ok := cached.(*dto.CompanyDetails); ok {
			return details, nil
		}
	}

	permalink, err := r.autocomplete(ctx, companyName)
	if err != nil {
		return nil, err
	}
	if permalink == "" {
		r.cache.Set(cacheKey, (*dto.CompanyDetails)(nil), gocache.DefaultExpiration)
		return nil, nil
	}

	details, err := r.entityDetails(ctx, permalink)
	if err != nil {
		return nil, err
	}

	r.cache.Set(cacheKey, details, gocache.DefaultExpiration)
	return details, nil
}

func (r *crunchbaseRepository) autocomplete(ctx context.Context, companyName string) (string, error) {
	endpoint := fmt.Sprintf("%s/autocompletes?query=%s&collection_ids=organizations&limit=1",
		r.baseURL(), url.QueryEscape(companyName))

	var resp dto.CrunchbaseAutocompleteResponse
	if err := r.getJSON(ctx, endpoint, &resp); err != nil {
		return "", fmt.Errorf("crunchbase autocomplete failed for %q: %w", companyName, err)
	}
	if len(resp.Entities) == 0 {
		return "", nil
	}
	return resp.Entities[0].Identifier.Permalink, nil
}

func (r *crunchbaseRepository) entityDetails(ctx context.Context, permalink string) (*dto.CompanyDetails, error) {
	endpoint := fmt.Sprintf("%s/entities/organizations/%s?field_ids=short_description,revenue_range,num_employees_enum,founded_on,location_identifiers",
		r.baseURL(), url.PathEscape(permalink))

	var resp dto.CrunchbaseEntityResponse
	if err := r.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("crunchbase entity lookup failed for %q: %w", permalink, err)
	}

	details := &dto.CompanyDetails{
		Description:   resp.Properties.ShortDescription,
		RevenueRange:  resp.Properties.RevenueRange,
		EmployeeCount: resp.Properties.NumEmployeesEnum,
	}
	if founded := resp.Properties.FoundedOn.Value; len(founded) >= 4 {
		details.FoundedYear = founded[:4]
	}

	// Location identifiers arrive ordered city, region, country.
	var parts []string
	for _, loc := range resp.Properties.LocationIdentifiers {
		switch loc.LocationType {
		case "city", "region", "country":
			parts = append(parts, loc.Value)
		}
	}
	details.Headquarters = strings.Join(parts, ", ")

	return details, nil
}

func (r *crunchbaseRepository) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for request limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("X-cb-user-key", r.cfg.Crunchbase.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.logger.Error("Received non-OK response from Crunchbase API",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("url", endpoint),
		)
		return fmt.Errorf("received non-OK response: %d - %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
