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

const accelPortfolioURL = "https://www.accel.com/relationships"

// AccelScraper scrapes the Accel relationships listing. Each card links
// to a detail page at /relationships/<slug> that carries the website.
type AccelScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewAccelScraper creates a new Accel scraper.
func NewAccelScraper(client *http.Client, log *logger.Logger) *AccelScraper {
	return &AccelScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *AccelScraper) FirmName() string {
	return "Accel"
}

// Scrape collects companies from the relationships listing.
func (s *AccelScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	doc, err := fetchDocument(ctx, s.client, accelPortfolioURL)
	if err != nil {
		return nil, err
	}

	var companies []dto.ScrapedCompany
	doc.Find(`a[href*="/relationships/"]`).Each(func(_ int, card *goquery.Selection) {
		href, _ := card.Attr("href")
		if href == "" || strings.HasSuffix(href, "/relationships") || strings.HasSuffix(href, "/relationships/") {
			return
		}

		name := strings.TrimSpace(card.Find("h3, .company-name").First().Text())
		if name == "" {
			name = strings.TrimSpace(card.Text())
		}
		if name == "" {
			return
		}

		detailURL := href
		if !strings.HasPrefix(detailURL, "http") {
			detailURL = "https://www.accel.com" + detailURL
		}

		companies = append(companies, dto.ScrapedCompany{
			Name:        utils.CleanToValidUTF8(name),
			Description: strings.TrimSpace(card.Find("p").First().Text()),
			Status:      "current",
			URL:         detailURL,
		})
	})

	// The listing mixes duplicate cards (featured + alphabetical).
	companies = dedupeByName(companies)

	s.logger.Info("Accel scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}

func dedupeByName(in []dto.ScrapedCompany) []dto.ScrapedCompany {
	seen := make(map[string]struct{}, len(in))
	out := make([]dto.ScrapedCompany, 0, len(in))
	for _, c := range in {
		key := strings.ToLower(c.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
