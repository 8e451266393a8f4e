package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Scrape run statuses.
const (
	ScrapeRunStatusSuccess = "SUCCESS"
	ScrapeRunStatusPartial = "PARTIAL"
	ScrapeRunStatusFailed  = "FAILED"
)

// ScrapeRun records the outcome of one firm's scrape-and-import pass.
type ScrapeRun struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	PEFirmName       string         `gorm:"not null;index" json:"pe_firm_name"`
	Status           string         `gorm:"not null" json:"status"`
	CompaniesFound   int            `json:"companies_found"`
	CompaniesAdded   int            `json:"companies_added"`
	CompaniesUpdated int            `json:"companies_updated"`
	FailedCompanies  pq.StringArray `gorm:"type:text[]" json:"failed_companies"`
	Result           datatypes.JSON `json:"result"`
	StartedAt        time.Time      `json:"started_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the ScrapeRun model.
func (ScrapeRun) TableName() string {
	return "scrape_runs"
}
