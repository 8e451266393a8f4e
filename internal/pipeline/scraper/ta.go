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

// taSectorPages lists the per-sector portfolio listing pages. Company
// detail pages hang off /portfolio/investments/.
var taSectorPages = map[string]string{
	"Business Services":  "https://www.ta.com/portfolio/business-services/",
	"Consumer":           "https://www.ta.com/portfolio/consumer/",
	"Financial Services": "https://www.ta.com/portfolio/financial-services/",
	"Healthcare":         "https://www.ta.com/portfolio/healthcare/",
	"Technology":         "https://www.ta.com/portfolio/technology/",
}

// TAScraper scrapes TA Associates: sector listing pages link to company
// detail pages, which carry status, HQ and investment year.
type TAScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewTAScraper creates a new TA Associates scraper.
func NewTAScraper(client *http.Client, log *logger.Logger) *TAScraper {
	return &TAScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *TAScraper) FirmName() string {
	return "TA Associates"
}

// Scrape walks every sector page and visits each company detail page.
func (s *TAScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	var companies []dto.ScrapedCompany

	for sector, sectorURL := range taSectorPages {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}

		doc, err := fetchDocument(ctx, s.client, sectorURL)
		if err != nil {
			s.logger.Error("Failed to fetch TA sector page", logger.ErrorField(err), logger.StringField("sector", sector))
			continue
		}

		seen := make(map[string]struct{})
		doc.Find(`a[href*="/portfolio/investments/"]`).Each(func(_ int, link *goquery.Selection) {
			href, _ := link.Attr("href")
			if href == "" || strings.HasSuffix(href, "/investments/") {
				return
			}
			if !strings.HasPrefix(href, "http") {
				href = "https://www.ta.com" + href
			}
			seen[href] = struct{}{}
		})

		s.logger.Info("TA sector page parsed",
			logger.StringField("sector", sector),
			logger.IntField("companies", len(seen)),
		)

		for companyURL := range seen {
			if !utils.ShouldContinue(ctx, s.logger) {
				break
			}
			company, err := s.scrapeCompanyPage(ctx, sector, companyURL)
			if err != nil {
				s.logger.Error("Failed to scrape TA company page", logger.ErrorField(err), logger.StringField("url", companyURL))
				continue
			}
			companies = append(companies, company)
		}
	}

	s.logger.Info("TA scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}

func (s *TAScraper) scrapeCompanyPage(ctx context.Context, sector, url string) (dto.ScrapedCompany, error) {
	doc, err := fetchDocument(ctx, s.client, url)
	if err != nil {
		return dto.ScrapedCompany{}, err
	}

	company := dto.ScrapedCompany{
		Name:       utils.CleanToValidUTF8(strings.TrimSpace(doc.Find("h1").First().Text())),
		Sector:     sector,
		SectorPage: sector,
		URL:        url,
	}

	// Detail rows are label/value pairs.
	doc.Find(".company-details .detail, .investment-details li").Each(func(_ int, row *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(row.Find(".label, dt").First().Text()))
		value := strings.TrimSpace(row.Find(".value, dd").First().Text())
		switch {
		case strings.Contains(label, "status"):
			company.Status = value
		case strings.Contains(label, "headquarters"), strings.Contains(label, "location"):
			company.Headquarters = value
		case strings.Contains(label, "year"):
			company.InvestmentYear = value
		case strings.Contains(label, "exit"):
			company.ExitInfo = value
		}
	})

	if website, ok := doc.Find(`a.company-website[href^="http"], a[rel="external"][href^="http"]`).First().Attr("href"); ok {
		company.Website = website
	}
	company.Description = strings.TrimSpace(doc.Find(".company-description p").First().Text())

	return company, nil
}
