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

const bainPortfolioURL = "https://www.baincapitalprivateequity.com/portfolio/current-and-former-portfolio-companies"

// bainSkipEntries are navigation items that share markup with the
// company list.
var bainSkipEntries = map[string]struct{}{
	"portfolio": {}, "current": {}, "former": {}, "companies": {},
	"about": {}, "our values": {}, "contact": {},
}

// BainScraper scrapes the Bain Capital combined current-and-former
// portfolio listing. A card whose text mentions an exit is marked
// former.
type BainScraper struct {
	client *http.Client
	logger *logger.Logger
}

// NewBainScraper creates a new Bain scraper.
func NewBainScraper(client *http.Client, log *logger.Logger) *BainScraper {
	return &BainScraper{client: client, logger: log}
}

// FirmName returns the firm this scraper covers.
func (s *BainScraper) FirmName() string {
	return "Bain Capital"
}

// Scrape collects companies from the combined portfolio listing.
func (s *BainScraper) Scrape(ctx context.Context) ([]dto.ScrapedCompany, error) {
	doc, err := fetchDocument(ctx, s.client, bainPortfolioURL)
	if err != nil {
		return nil, err
	}

	var companies []dto.ScrapedCompany
	doc.Find(".portfolio-item, .company-card, li.company").Each(func(_ int, card *goquery.Selection) {
		text := strings.TrimSpace(card.Text())
		if text == "" {
			return
		}
		name := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
		if len(name) < 2 {
			return
		}
		if _, skip := bainSkipEntries[strings.ToLower(name)]; skip {
			return
		}

		status := "Current"
		lower := strings.ToLower(text)
		for _, marker := range []string{"exit", "sold", "divested", "former"} {
			if strings.Contains(lower, marker) {
				status = "Exit"
				break
			}
		}

		website := ""
		if href, ok := card.Find(`a[href^="http"]`).First().Attr("href"); ok && !strings.Contains(href, "baincapital") {
			website = href
		}

		companies = append(companies, dto.ScrapedCompany{
			Name:    utils.CleanToValidUTF8(name),
			Status:  status,
			Website: website,
			URL:     bainPortfolioURL,
		})
	})

	companies = dedupeByName(companies)

	s.logger.Info("Bain scrape complete", logger.IntField("companies", len(companies)))
	return companies, nil
}
