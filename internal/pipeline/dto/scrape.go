package dto

import "time"

// ScrapedCompany is one raw company record as collected from a PE firm's
// portfolio pages, before normalization or deduplication.
type ScrapedCompany struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Website        string `json:"website,omitempty"`
	Sector         string `json:"sector,omitempty"`
	Headquarters   string `json:"headquarters,omitempty"`
	Status         string `json:"status,omitempty"`
	InvestmentYear string `json:"investment_year,omitempty"`
	ExitInfo       string `json:"exit_info,omitempty"`
	URL            string `json:"url,omitempty"`
	SectorPage     string `json:"sector_page,omitempty"`
	DataArea       string `json:"area,omitempty"`
	DataFund       string `json:"fund,omitempty"`
}

// PortfolioSnapshot is the JSON envelope written after each scrape run
// and consumed by the importer.
type PortfolioSnapshot struct {
	PEFirm         string           `json:"pe_firm"`
	ExtractionDate time.Time        `json:"extraction_date"`
	TotalCompanies int              `json:"total_companies"`
	Companies      []ScrapedCompany `json:"companies"`
}
