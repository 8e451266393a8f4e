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

const generalAtlanticPortfolioURL = "https://www.generalatlantic.com/investments/"

// GeneralAtlanticScraper scrapes the General Atlantic investments grid.
// Every card carries a heading with the name and a "View Site" link to
// the company website.
type GeneralAtlanticScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewGeneralAtlanticScraper creates a new General Atlantic scraper.
func NewGeneralAtlanticScraper(client *http.Client, log *logger.Logger) *GeneralAtlanticScraper {
	return &GeneralAtlanticScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *GeneralAtlanticScraper) FirmName() string {
	return "General Atlantic"
}

// Scrape collects companies from the investments grid.
func (s *GeneralAtlanticScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	doc, err := fetchDocument(ctx, s.client, generalAtlanticPortfolioURL)
	if err != nil {
		return nil, err
	}

	var companies []dto.ScrapedCompany
	doc.Find(".investment-card, .portfolio-item, article").Each(func(_ int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find("h2, h3, .company-name").First().Text())
		if name == "" {
			return
		}

		website := ""
		card.Find(`a[href^="http"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
			text := strings.ToLower(strings.TrimSpace(link.Text()))
			href, _ := link.Attr("href")
			if strings.Contains(text, "view site") && !strings.Contains(href, "generalatlantic.com") {
				website = href
				return false
			}
			return true
		})

		companies = append(companies, dto.ScrapedCompany{
			Name:    utils.CleanToValidUTF8(name),
			Sector:  strings.TrimSpace(card.Find(".sector, .category").First().Text()),
			Status:  "current",
			Website: website,
			URL:     generalAtlanticPortfolioURL,
		})
	})

	companies = dedupeByName(companies)

	s.logger.Info("General Atlantic scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}
