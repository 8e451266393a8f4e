package scraper

import (
	"context"
	"net/http"
	"strings"

	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/utils"

	"github.com/PuerkitoBio/goquery"
)

const eqtPortfolioURL = "https://eqtgroup.com/about/current-portfolio"

// EQTScraper scrapes the EQT current portfolio listing. Each row links
// to a detail page at /current-portfolio/<slug> and carries sector and
// fund columns.
type EQTScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewEQTScraper creates a new EQT scraper.
func NewEQTScraper(client *http.Client, log *logger.Logger) *EQTScraper {
	return &EQTScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *EQTScraper) FirmName() string {
	return "EQT"
}

// Scrape collects companies from the current portfolio listing.
func (s *EQTScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	doc, err := fetchDocument(ctx, s.client, eqtPortfolioURL)
	if err != nil {
		return nil, err
	}

	var companies []dto.ScrapedCompany
	doc.Find(`a[href*="/current-portfolio/"]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if href == "" || strings.HasSuffix(href, "/current-portfolio") || strings.HasSuffix(href, "/current-portfolio/") {
			return
		}

		row := link.Closest("tr, li, .list-item")
		name := strings.TrimSpace(link.Text())
		if name == "" {
			name = strings.TrimSpace(row.Find("h3, .name").First().Text())
		}
		if name == "" {
			return
		}

		detailURL := href
		if !strings.HasPrefix(detailURL, "http") {
			detailURL = "https://eqtgroup.com" + detailURL
		}

		companies = append(companies, dto.ScrapedCompany{
			Name:     utils.CleanToValidUTF8(name),
			Status:   "current",
			Sector:   strings.TrimSpace(row.Find(".sector, td:nth-child(2)").First().Text()),
			DataFund: strings.TrimSpace(row.Find(".fund, td:nth-child(3)").First().Text()),
			URL:      detailURL,
		})
	})

	companies = dedupeByName(companies)

	s.logger.Info("EQT scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}
