package dto

import (
	"time"

	"pe-portfolio-aggregator/internal/entity"
)

// PEFirmResponse is one firm with its portfolio counters.
type PEFirmResponse struct {
	ID                    uint       `json:"id"`
	Name                  string     `json:"name"`
	TotalCompanies        int        `json:"total_companies"`
	CurrentPortfolioCount int        `json:"current_portfolio_count"`
	ExitedPortfolioCount  int        `json:"exited_portfolio_count"`
	LastScraped           *time.Time `json:"last_scraped,omitempty"`
	ExtractionTimeMinutes int        `json:"extraction_time_minutes"`
}

// NewPEFirmResponse maps a firm entity.
func NewPEFirmResponse(firm *entity.PEFirm) PEFirmResponse {
	return PEFirmResponse{
		ID:                    firm.ID,
		Name:                  firm.Name,
		TotalCompanies:        firm.TotalCompanies,
		CurrentPortfolioCount: firm.CurrentPortfolioCount,
		ExitedPortfolioCount:  firm.ExitedPortfolioCount,
		LastScraped:           firm.LastScraped,
		ExtractionTimeMinutes: firm.ExtractionTimeMinutes,
	}
}
