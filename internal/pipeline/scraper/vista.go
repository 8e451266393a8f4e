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

const vistaPortfolioURL = "https://www.vistaequitypartners.com/companies/portfolio"

// VistaScraper scrapes the Vista Equity Partners portfolio table. Every
// company sits in one table with status, industry, HQ and fund carried
// as data attributes on the row.
type VistaScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewVistaScraper creates a new Vista scraper.
func NewVistaScraper(client *http.Client, log *logger.Logger) *VistaScraper {
	return &VistaScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *VistaScraper) FirmName() string {
	return "Vista Equity Partners"
}

// Scrape collects all companies from the portfolio table.
func (s *VistaScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	doc, err := fetchDocument(ctx, s.client, vistaPortfolioURL)
	if err != nil {
		return nil, err
	}

	var companies []dto.ScrapedCompany
	doc.Find("section.table .row[data-status]").Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(".info .company").First().Text())
		if name == "" {
			return
		}

		status, _ := row.Attr("data-status")
		industry, _ := row.Attr("data-industry")
		area, _ := row.Attr("data-area")
		fund, _ := row.Attr("data-fund")

		headquarters := strings.TrimSpace(row.Find(".area").First().Text())
		if headquarters == "" {
			headquarters = area
		}

		website := ""
		row.Find(`a[href^="http"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
			href, _ := link.Attr("href")
			if !strings.Contains(href, "vista") {
				website = href
				return false
			}
			return true
		})

		statusLower := strings.ToLower(status)
		normalized := "current"
		if statusLower == "former" || strings.Contains(statusLower, "exit") {
			normalized = "former"
		}

		companies = append(companies, dto.ScrapedCompany{
			Name:         utils.CleanToValidUTF8(name),
			Status:       normalized,
			Sector:       industry,
			Headquarters: headquarters,
			Website:      website,
			DataArea:     area,
			DataFund:     fund,
			URL:          vistaPortfolioURL,
		})
	})

	s.logger.Info("Vista scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}
