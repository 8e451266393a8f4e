package scraper

import (
	"context"
	"net/http"
	"testing"
	"time"

	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}

const vistaFixture = `
<html><body>
<section class="table">
  <div class="row" data-status="current" data-industry="Software" data-area="Austin, TX" data-fund="Flagship">
    <div class="info"><span class="company">Acme Software</span></div>
    <div class="area">Austin, TX</div>
    <a href="https://www.acmesoftware.com">Visit</a>
  </div>
  <div class="row" data-status="former" data-industry="Fintech" data-area="London, UK" data-fund="Foundation">
    <div class="info"><span class="company">Ledgerly</span></div>
    <div class="area">London, UK</div>
    <a href="https://www.vistaequitypartners.com/companies/ledgerly">Profile</a>
    <a href="https://www.ledgerly.io">Visit</a>
  </div>
  <div class="row" data-status="current">
    <div class="info"><span class="company"></span></div>
  </div>
</section>
</body></html>`

func TestVistaScraperParsesPortfolioTable(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodGet, vistaPortfolioURL,
		httpmock.NewStringResponder(http.StatusOK, vistaFixture))

	s := NewVistaScraper(client, newTestLogger(t))
	companies, err := s.Scrape(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 2)

	assert.Equal(t, "Acme Software", companies[0].Name)
	assert.Equal(t, "current", companies[0].Status)
	assert.Equal(t, "Software", companies[0].Sector)
	assert.Equal(t, "Austin, TX", companies[0].Headquarters)
	assert.Equal(t, "https://www.acmesoftware.com", companies[0].Website)
	assert.Equal(t, "Flagship", companies[0].DataFund)

	assert.Equal(t, "Ledgerly", companies[1].Name)
	assert.Equal(t, "former", companies[1].Status)
	// Firm profile links are skipped in favor of the company site.
	assert.Equal(t, "https://www.ledgerly.io", companies[1].Website)
}

const a16zFixture = `
<html><body>
<div class="company-grid-item" data-sector="Fintech">
  <span class="company-name">PayFlow</span>
  <div class="builder-title"><span></span></div>
  <a href="https://www.payflow.com">site</a>
</div>
<div class="company-grid-item" data-sector="Bio">
  <span class="company-name">GeneWorks</span>
  <div class="builder-title"><span>IPO: GNWX</span></div>
</div>
<div class="company-grid-item" data-sector="Consumer">
  <span class="company-name">Shoply</span>
  <div class="builder-title"><span>Acquired by BigCo</span></div>
</div>
</body></html>`

func TestA16zScraperDetectsExits(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodGet, a16zPortfolioURL,
		httpmock.NewStringResponder(http.StatusOK, a16zFixture))

	s := NewA16zScraper(client, newTestLogger(t))
	companies, err := s.Scrape(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 3)

	assert.Equal(t, "current", companies[0].Status)
	assert.Equal(t, "https://www.payflow.com", companies[0].Website)

	assert.Equal(t, "exit", companies[1].Status)
	assert.Equal(t, "IPO: GNWX", companies[1].ExitInfo)

	assert.Equal(t, "exit", companies[2].Status)
	assert.Equal(t, "Acquired by BigCo", companies[2].ExitInfo)
}

const adventPageOneFixture = `
<html><body>
<article class="filters">Filter by sector</article>
<article>
  <h3>CloudOps</h3>
  <p>Infrastructure monitoring.</p>
  <a href="https://www.cloudops.io">Visit Company Website</a>
</article>
<article>
  <h3>MediChart</h3>
  <a href="https://www.adventinternational.com/team">Team</a>
  <a href="https://www.medichart.com">Visit Company Website</a>
</article>
</body></html>`

const adventPageTwoFixture = `
<html><body>
<article class="filters">Filter by sector</article>
<article>
  <h3>ShopMetrics</h3>
  <a href="https://www.shopmetrics.com">Visit Company Website</a>
</article>
</body></html>`

const adventEmptyFixture = `<html><body><article class="filters">Filter by sector</article></body></html>`

func TestAdventScraperWalksPagination(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodGet, adventBaseURL,
		httpmock.NewStringResponder(http.StatusOK, adventPageOneFixture))
	httpmock.RegisterResponder(http.MethodGet, adventBaseURL+"?sf_paged=2",
		httpmock.NewStringResponder(http.StatusOK, adventPageTwoFixture))
	httpmock.RegisterResponder(http.MethodGet, adventBaseURL+"?sf_paged=3",
		httpmock.NewStringResponder(http.StatusOK, adventEmptyFixture))

	s := NewAdventScraper(client, newTestLogger(t))
	companies, err := s.Scrape(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 3)

	assert.Equal(t, "CloudOps", companies[0].Name)
	assert.Equal(t, "Infrastructure monitoring.", companies[0].Description)
	assert.Equal(t, "https://www.cloudops.io", companies[0].Website)
	// Firm-internal links are not mistaken for the company site.
	assert.Equal(t, "https://www.medichart.com", companies[1].Website)
	assert.Equal(t, "ShopMetrics", companies[2].Name)
	// The empty third page stops the walk.
	assert.Equal(t, 3, httpmock.GetTotalCallCount())
}

const bainFixture = `
<html><body>
<ul>
  <li class="company">Acme Software
<a href="https://www.acmesoftware.com">Site</a></li>
  <li class="company">Ledgerly (exited 2021)</li>
  <li class="company">Portfolio</li>
</ul>
</body></html>`

func TestBainScraperMarksExits(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodGet, bainPortfolioURL,
		httpmock.NewStringResponder(http.StatusOK, bainFixture))

	s := NewBainScraper(client, newTestLogger(t))
	companies, err := s.Scrape(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 2)

	assert.Equal(t, "Acme Software", companies[0].Name)
	assert.Equal(t, "Current", companies[0].Status)
	assert.Equal(t, "https://www.acmesoftware.com", companies[0].Website)

	assert.Equal(t, "Ledgerly (exited 2021)", companies[1].Name)
	assert.Equal(t, "Exit", companies[1].Status)
}

func TestFetchDocumentRejectsNon200(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodGet, "https://example.com/portfolio",
		httpmock.NewStringResponder(http.StatusForbidden, "blocked"))

	_, err := fetchDocument(context.Background(), client, "https://example.com/portfolio")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestByName(t *testing.T) {
	log := newTestLogger(t)
	assert.NotNil(t, ByName("Vista Equity Partners", log))
	assert.NotNil(t, ByName("Accel", log))
	assert.NotNil(t, ByName("Advent International", log))
	assert.NotNil(t, ByName("Bessemer Venture Partners", log))
	assert.Nil(t, ByName("Unknown Capital", log))
}

func TestAllCoversEveryFirm(t *testing.T) {
	scrapers := All(newTestLogger(t))
	require.Len(t, scrapers, 10)

	names := make(map[string]struct{}, len(scrapers))
	for _, s := range scrapers {
		names[s.FirmName()] = struct{}{}
	}
	for _, firm := range []string{
		"Vista Equity Partners", "TA Associates", "Andreessen Horowitz", "Accel",
		"Advent International", "Apax Partners", "Bain Capital",
		"Bessemer Venture Partners", "EQT", "General Atlantic",
	} {
		_, ok := names[firm]
		assert.True(t, ok, firm)
	}
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	store, err := NewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	snapshot := dto.PortfolioSnapshot{
		PEFirm:         "Vista Equity Partners",
		ExtractionDate: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		TotalCompanies: 1,
		Companies: []dto.ScrapedCompany{
			{Name: "Acme Software", Status: "current", Sector: "Software"},
		},
	}

	path, err := store.Write(snapshot)
	require.NoError(t, err)

	loaded, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)

	latest, err := store.Latest()
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, path, latest[0])
}
