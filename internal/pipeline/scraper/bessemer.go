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

const bessemerPortfolioURL = "https://www.bvp.com/companies"

// BessemerScraper scrapes the Bessemer Venture Partners companies
// listing. Each company links to a detail page at /companies/<slug>.
type BessemerScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewBessemerScraper creates a new Bessemer scraper.
func NewBessemerScraper(client *http.Client, log *logger.Logger) *BessemerScraper {
	return &BessemerScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *BessemerScraper) FirmName() string {
	return "Bessemer Venture Partners"
}

// Scrape collects companies from the portfolio listing.
func (s *BessemerScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	doc, err := fetchDocument(ctx, s.client, bessemerPortfolioURL)
	if err != nil {
		return nil, err
	}

	var companies []dto.ScrapedCompany
	doc.Find(`a[href*="/companies/"]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if href == "" || strings.HasSuffix(href, "/companies") || strings.HasSuffix(href, "/companies/") {
			return
		}

		name := strings.TrimSpace(link.Text())
		if name == "" {
			return
		}

		detailURL := href
		if !strings.HasPrefix(detailURL, "http") {
			detailURL = "https://www.bvp.com" + detailURL
		}

		companies = append(companies, dto.ScrapedCompany{
			Name:   utils.CleanToValidUTF8(name),
			Status: "current",
			URL:    detailURL,
		})
	})

	// The grid repeats featured companies above the full list.
	companies = dedupeByName(companies)

	s.logger.Info("Bessemer scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}
