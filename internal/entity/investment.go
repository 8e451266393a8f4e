package entity

import (
	"time"
)

// Investment status values derived from raw scraped statuses.
const (
	StatusActive = "Active"
	StatusExit   = "Exit"
)

// CompanyPEInvestment captures one firm's relationship to one company.
// At most one row exists per (company, firm) pair.
type CompanyPEInvestment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"not null;uniqueIndex:uq_company_pe_firm" json:"company_id"`
	PEFirmID  uint `gorm:"not null;uniqueIndex:uq_company_pe_firm" json:"pe_firm_id"`

	// RawStatus is the status text as scraped; ComputedStatus is the
	// normalized Active/Exit label, recomputed on every re-import.
	RawStatus      string `gorm:"index" json:"raw_status"`
	ComputedStatus string `gorm:"index" json:"computed_status"`

	InvestmentYear  string `gorm:"index" json:"investment_year"`
	InvestmentStage string `json:"investment_stage"`

	ExitType string `json:"exit_type"`
	ExitInfo string `json:"exit_info"`
	ExitYear string `json:"exit_year"`

	// Scraper metadata
	SourceURL  string `json:"source_url"`
	SectorPage string `json:"sector_page"`
	DataArea   string `json:"data_area"`
	DataFund   string `json:"data_fund"`

	// StatusConfirmedAt records when the computed status was last derived
	// from a fresh scrape, so staleness is explicit.
	StatusConfirmedAt *time.Time `json:"status_confirmed_at,omitempty"`
	LastScraped       *time.Time `json:"last_scraped,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	PEFirm  *PEFirm  `gorm:"foreignKey:PEFirmID" json:"pe_firm,omitempty"`
}

// TableName specifies the table name for the CompanyPEInvestment model.
func (CompanyPEInvestment) TableName() string {
	return "company_pe_investments"
}
