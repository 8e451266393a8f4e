package repository

import (
	"context"
	"net/http"
	"testing"
	"time"

	"pe-portfolio-aggregator/internal/pipeline/config"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/jarcoal/httpmock"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

func TestCrunchbaseFindCompanyDetails(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet,
		`=~^https://api\.crunchbase\.com/api/v4/autocompletes`,
		httpmock.NewStringResponder(http.StatusOK, `{
			"entities": [{"identifier": {"permalink": "acme-software", "value": "Acme Software"}}]
		}`))
	httpmock.RegisterResponder(http.MethodGet,
		`=~^https://api\.crunchbase\.com/api/v4/entities/organizations/acme-software`,
		httpmock.NewStringResponder(http.StatusOK, `{
			"properties": {
				"short_description": "Workflow automation for accountants.",
				"revenue_range": "r_00010000",
				"num_employees_enum": "c_00101_00250",
				"founded_on": {"value": "2014-03-01"},
				"location_identifiers": [
					{"value": "Austin", "location_type": "city"},
					{"value": "Texas", "location_type": "region"},
					{"value": "United States", "location_type": "country"}
				]
			}
		}`))

	cfg := &config.Config{}
	cfg.Crunchbase.APIKey = "test-key"
	repo := &crunchbaseRepository{
		client:         client,
		cfg:            cfg,
		logger:         newTestLogger(t),
		requestLimiter: rate.NewLimiter(rate.Inf, 1),
		cache:          gocache.New(time.Minute, time.Minute),
	}

	details, err := repo.FindCompanyDetails(context.Background(), "Acme Software")
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, "Workflow automation for accountants.", details.Description)
	assert.Equal(t, "r_00010000", details.RevenueRange)
	assert.Equal(t, "c_00101_00250", details.EmployeeCount)
	assert.Equal(t, "2014", details.FoundedYear)
	assert.Equal(t, "Austin, Texas, United States", details.Headquarters)

	// Second lookup is served from cache.
	calls := httpmock.GetTotalCallCount()
	_, err = repo.FindCompanyDetails(context.Background(), "Acme Software")
	require.NoError(t, err)
	assert.Equal(t, calls, httpmock.GetTotalCallCount())
}

func TestCrunchbaseNoMatch(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet,
		`=~^https://api\.crunchbase\.com/api/v4/autocompletes`,
		httpmock.NewStringResponder(http.StatusOK, `{"entities": []}`))

	cfg := &config.Config{}
	repo := &crunchbaseRepository{
		client:         client,
		cfg:            cfg,
		logger:         newTestLogger(t),
		requestLimiter: rate.NewLimiter(rate.Inf, 1),
		cache:          gocache.New(time.Minute, time.Minute),
	}

	details, err := repo.FindCompanyDetails(context.Background(), "Nonexistent Co")
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestSerperFindLinkedInURL(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, "https://google.serper.dev/search",
		httpmock.NewStringResponder(http.StatusOK, `{
			"organic": [
				{"title": "Acme Software | LinkedIn", "link": "https://www.linkedin.com/company/acme-software/"},
				{"title": "Jane Doe - Acme", "link": "https://www.linkedin.com/in/janedoe"}
			]
		}`))

	cfg := &config.Config{}
	cfg.Serper.APIKey = "test-key"
	repo := &serperRepository{client: client, cfg: cfg, logger: newTestLogger(t)}

	url, err := repo.FindLinkedInURL(context.Background(), "Acme Software")
	require.NoError(t, err)
	assert.Equal(t, "https://www.linkedin.com/company/acme-software", url)
}

func TestSerperFallsBackToSlugProbe(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, "https://google.serper.dev/search",
		httpmock.NewStringResponder(http.StatusOK, `{"organic": []}`))
	httpmock.RegisterResponder(http.MethodHead, "https://www.linkedin.com/company/acme-software",
		httpmock.NewStringResponder(http.StatusOK, ""))

	cfg := &config.Config{}
	repo := &serperRepository{client: client, cfg: cfg, logger: newTestLogger(t)}

	url, err := repo.FindLinkedInURL(context.Background(), "Acme Software")
	require.NoError(t, err)
	assert.Equal(t, "https://www.linkedin.com/company/acme-software", url)
}

func TestSwarmGetCompanyProfile(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet,
		"https://api.theswarm.com/v1/companies/by-domain/acmesoftware.com",
		httpmock.NewStringResponder(http.StatusOK, `{
			"name": "Acme Software",
			"industry": "Software",
			"ownership_status_detailed": "Publicly Held",
			"is_public": false,
			"ipo_date": "2021-06-15",
			"stock_exchange": "NASDAQ",
			"summary": "Workflow automation."
		}`))

	cfg := &config.Config{}
	repo := &swarmRepository{client: client, cfg: cfg, logger: newTestLogger(t)}

	profile, err := repo.GetCompanyProfile(context.Background(), "https://www.acmesoftware.com/about")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.True(t, profile.IsPublic)
	assert.Equal(t, "NASDAQ", profile.StockExchange)
	assert.Equal(t, "2021-06-15", profile.IPODate)
}

func TestSwarmUnknownDomain(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet,
		"https://api.theswarm.com/v1/companies/by-domain/unknown.io",
		httpmock.NewStringResponder(http.StatusNotFound, `{"error": "not found"}`))

	cfg := &config.Config{}
	repo := &swarmRepository{client: client, cfg: cfg, logger: newTestLogger(t)}

	profile, err := repo.GetCompanyProfile(context.Background(), "unknown.io")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestParseClassifierAnswer(t *testing.T) {
	assert.Equal(t, "Financial Services", parseClassifierAnswer("Financial Services"))
	assert.Equal(t, "Financial Services", parseClassifierAnswer(" \"Financial Services\" "))
	assert.Equal(t, "Other", parseClassifierAnswer("Something made up"))
	assert.Equal(t, "Other", parseClassifierAnswer(""))
}
