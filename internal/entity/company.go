package entity

import (
	"time"
)

// Company is a portfolio company, deduplicated across PE firms.
// NormalizedName is the dedup key: lowercase with punctuation stripped,
// so re-imports match "Datadog, Inc." against "Datadog Inc".
type Company struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null;index" json:"name"`
	NormalizedName string `gorm:"uniqueIndex;not null" json:"-"`
	Description    string `json:"description"`
	Website        string `gorm:"index" json:"website"`
	LinkedinURL    string `json:"linkedin_url"`

	// Crunchbase enrichment (bracket codes, e.g. r_00100000 / c_01001_05000)
	RevenueRange  string `gorm:"index" json:"revenue_range"`
	EmployeeCount string `gorm:"index" json:"employee_count"`

	PredictedRevenue float64 `gorm:"index" json:"predicted_revenue"`

	// Geographic fields parsed from the headquarters string
	Country     string `gorm:"index" json:"country"`
	StateRegion string `gorm:"index" json:"state_region"`
	City        string `gorm:"index" json:"city"`

	// Derived categorization
	CompanySizeCategory string `gorm:"index" json:"company_size_category"`
	RevenueTier         string `gorm:"index" json:"revenue_tier"`
	IndustryCategory    string `gorm:"index" json:"industry_category"`

	// IPO information
	IsPublic    bool       `gorm:"index" json:"is_public"`
	IPOTicker   string     `json:"ipo_ticker"`
	IPODate     *time.Time `json:"ipo_date,omitempty"`
	IPOExchange string     `json:"ipo_exchange"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Investments []CompanyPEInvestment `gorm:"foreignKey:CompanyID" json:"investments,omitempty"`
	Tags        []CompanyTag          `gorm:"foreignKey:CompanyID" json:"tags,omitempty"`
}

// TableName specifies the table name for the Company model.
func (Company) TableName() string {
	return "companies"
}
