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

const a16zPortfolioURL = "https://a16z.com/portfolio/"

// A16zScraper scrapes the Andreessen Horowitz portfolio grid. Exited
// companies carry the exit in the tile subtitle ("IPO: ...", "Acquired
// by ...").
type A16zScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewA16zScraper creates a new a16z scraper.
func NewA16zScraper(client *http.Client, log *logger.Logger) *A16zScraper {
	return &A16zScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *A16zScraper) FirmName() string {
	return "Andreessen Horowitz"
}

// Scrape collects all companies from the portfolio grid.
func (s *A16zScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	doc, err := fetchDocument(ctx, s.client, a16zPortfolioURL)
	if err != nil {
		return nil, err
	}

	var companies []dto.ScrapedCompany
	doc.Find(".company-grid-item").Each(func(_ int, tile *goquery.Selection) {
		name := strings.TrimSpace(tile.Find(".company-name").First().Text())
		if name == "" {
			name = strings.TrimSpace(tile.AttrOr("data-company", ""))
		}
		if name == "" {
			return
		}

		subtitle := strings.TrimSpace(tile.Find(".builder-title span").First().Text())
		sector := strings.TrimSpace(tile.AttrOr("data-sector", ""))

		company := dto.ScrapedCompany{
			Name:       utils.CleanToValidUTF8(name),
			Sector:     sector,
			SectorPage: sector,
			URL:        a16zPortfolioURL,
			Status:     "current",
		}

		// Subtitles on exited tiles read "IPO: TICKER" or "Acquired by X".
		subtitleLower := strings.ToLower(subtitle)
		if strings.Contains(subtitleLower, "ipo") || strings.Contains(subtitleLower, "acquired") {
			company.Status = "exit"
			company.ExitInfo = subtitle
		}

		if website, ok := tile.Find(`a[href^="http"]:not([href*="a16z.com"])`).First().Attr("href"); ok {
			company.Website = website
		}

		companies = append(companies, company)
	})

	s.logger.Info("a16z scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}
