package entity

import (
	"time"
)

// PEFirm represents a private equity or venture capital firm whose
// portfolio pages are scraped.
type PEFirm struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	Name                   string     `gorm:"unique;not null;index" json:"name"`
	TotalCompanies         int        `json:"total_companies"`
	CurrentPortfolioCount  int        `json:"current_portfolio_count"`
	ExitedPortfolioCount   int        `json:"exited_portfolio_count"`
	LastScraped            *time.Time `json:"last_scraped,omitempty"`
	ExtractionTimeMinutes  int        `json:"extraction_time_minutes"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Investments []CompanyPEInvestment `gorm:"foreignKey:PEFirmID" json:"investments,omitempty"`
}

// TableName specifies the table name for the PEFirm model.
func (PEFirm) TableName() string {
	return "pe_firms"
}
