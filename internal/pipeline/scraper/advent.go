package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/pkg/logger"
	"pe-portfolio-aggregator/pkg/utils"

	"github.com/PuerkitoBio/goquery"
)

const adventBaseURL = "https://www.adventinternational.com/investments/"

// adventMaxPages caps the pagination walk; the listing runs to roughly
// 43 pages at 10 companies each.
const adventMaxPages = 60

// AdventScraper scrapes the paginated Advent International investments
// listing. Each page carries article elements, the first of which is
// the filter bar; company articles hold an h3 name and a "Visit Company
// Website" link.
type AdventScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewAdventScraper creates a new Advent scraper.
func NewAdventScraper(client *http.Client, log *logger.Logger) *AdventScraper {
	return &AdventScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *AdventScraper) FirmName() string {
	return "Advent International"
}

// Scrape walks the paginated listing until a page yields no companies.
func (s *AdventScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	var companies []dto.ScrapedCompany

	for page := 1; page <= adventMaxPages; page++ {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}

		pageURL := adventBaseURL
		if page > 1 {
			pageURL = fmt.Sprintf("%s?sf_paged=%d", adventBaseURL, page)
		}
		doc, err := fetchDocument(ctx, s.client, pageURL)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			s.logger.Error("Failed to fetch Advent page", logger.ErrorField(err), logger.IntField("page", page))
			break
		}

		found := 0
		doc.Find("article").Each(func(i int, article *goquery.Selection) {
			name := strings.TrimSpace(article.Find("h3").First().Text())
			if name == "" {
				// The first article is the filter bar.
				return
			}

			website := ""
			article.Find(`a[href^="http"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
				text := strings.ToLower(strings.TrimSpace(link.Text()))
				if strings.Contains(text, "visit company website") {
					website, _ = link.Attr("href")
					return false
				}
				return true
			})

			companies = append(companies, dto.ScrapedCompany{
				Name:        utils.CleanToValidUTF8(name),
				Description: strings.TrimSpace(article.Find("p").First().Text()),
				Sector:      strings.TrimSpace(article.Find(".sector, .category").First().Text()),
				Status:      "current",
				Website:     website,
				URL:         pageURL,
			})
			found++
		})

		if found == 0 {
			break
		}
	}

	s.logger.Info("Advent scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}
