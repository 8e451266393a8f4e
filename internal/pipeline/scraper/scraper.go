package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pe-portfolio-aggregator/internal/pipeline/dto"
	"pe-portfolio-aggregator/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

// Scraper collects raw portfolio-company records from one firm's site.
type Scraper interface {
	FirmName() string
	Scrape(ctx context.Context) ([]dto.ScrapedCompany, error)
}

// All returns every registered firm scraper.
func All(log *logger.Logger) []Scraper {
	client := &http.Client{Timeout: 15 * time.Second}
	return []Scraper{
		NewVistaScraper(client, log),
		NewTAScraper(client, log),
		NewA16zScraper(client, log),
		NewAccelScraper(client, log),
		NewAdventScraper(client, log),
		NewApaxScraper(client, log),
		NewBainScraper(client, log),
		NewBessemerScraper(client, log),
		NewEQTScraper(client, log),
		NewGeneralAtlanticScraper(client, log),
	}
}

// ByName returns the scraper for the given firm name, or nil.
func ByName(name string, log *logger.Logger) Scraper {
	for _, s := range All(log) {
		if s.FirmName() == name {
			return s
		}
	}
	return nil
}

// fetchDocument fetches a page and parses it with goquery. Portfolio
// pages reject default Go user agents, so browser-like headers are set.
func fetchDocument(ctx context.Context, client *http.Client, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s, status code: %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return doc, nil
}
