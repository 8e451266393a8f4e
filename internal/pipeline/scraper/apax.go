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

const apaxPortfolioURL = "https://www.apax.com/all-investments-listed-alphabetically/"

// apaxSkipDomains filters the firm's own pages and social links out of
// the alphabetical investment list.
var apaxSkipDomains = []string{
	"apax.com", "linkedin.com", "twitter.com", "x.com",
	"facebook.com", "instagram.com", "youtube.com",
}

// ApaxScraper scrapes the Apax Partners alphabetical investments page.
// The company entries link straight to the company websites, so the
// anchor text is the name and the href the website.
type ApaxScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewApaxScraper creates a new Apax scraper.
func NewApaxScraper(client *http.Client, log *logger.Logger) *ApaxScraper {
	return &ApaxScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *ApaxScraper) FirmName() string {
	return "Apax Partners"
}

// Scrape collects every external company link on the listing page.
func (s *ApaxScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	doc, err := fetchDocument(ctx, s.client, apaxPortfolioURL)
	if err != nil {
		return nil, err
	}

	var companies []dto.ScrapedCompany
	doc.Find(`main a[href^="http"], .entry-content a[href^="http"]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		lower := strings.ToLower(href)
		for _, domain := range apaxSkipDomains {
			if strings.Contains(lower, domain) {
				return
			}
		}

		name := strings.TrimSpace(link.Text())
		if name == "" || len(name) < 2 {
			return
		}

		companies = append(companies, dto.ScrapedCompany{
			Name:    utils.CleanToValidUTF8(name),
			Status:  "current",
			Website: href,
			URL:     apaxPortfolioURL,
		})
	})

	companies = dedupeByName(companies)

	s.logger.Info("Apax scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}
