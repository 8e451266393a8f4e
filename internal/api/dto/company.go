package dto

import (
	"time"

	"pe-portfolio-aggregator/internal/classify"
	"pe-portfolio-aggregator/internal/entity"
)

// CompanyListRequest carries the list filters. Multi-value filters
// accept comma-separated values.
type CompanyListRequest struct {
	Search       string `query:"search"`
	Industry     string `query:"industry"`
	Country      string `query:"country"`
	SizeCategory string `query:"size_category"`
	RevenueTier  string `query:"revenue_tier"`
	PEFirm       string `query:"pe_firm"`
	Status       string `query:"status"`
	IsPublic     string `query:"is_public"`
	Limit        int    `query:"limit"`
	Offset       int    `query:"offset"`
}

// CompanyResponse is one company with its investors and tags.
type CompanyResponse struct {
	ID                  uint       `json:"id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Website             string     `json:"website"`
	LinkedinURL         string     `json:"linkedin_url"`
	RevenueRange        string     `json:"revenue_range"`
	RevenueRangeLabel   string     `json:"revenue_range_label"`
	EmployeeCount       string     `json:"employee_count"`
	EmployeeCountLabel  string     `json:"employee_count_label"`
	PredictedRevenue    float64    `json:"predicted_revenue"`
	Country             string     `json:"country"`
	StateRegion         string     `json:"state_region"`
	City                string     `json:"city"`
	CompanySizeCategory string     `json:"company_size_category"`
	RevenueTier         string     `json:"revenue_tier"`
	IndustryCategory    string     `json:"industry_category"`
	IsPublic            bool       `json:"is_public"`
	IPOTicker           string     `json:"ipo_ticker,omitempty"`
	IPODate             *time.Time `json:"ipo_date,omitempty"`
	IPOExchange         string     `json:"ipo_exchange,omitempty"`
	PEFirms             []string   `json:"pe_firms"`
	Tags                []TagItem  `json:"tags"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TagItem is one (category, value) tag on a company.
type TagItem struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

// CompanyListResponse is a paginated list of companies.
type CompanyListResponse struct {
	Total     int64             `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
	Companies []CompanyResponse `json:"companies"`
}

// CompanyUpdateRequest is the admin edit payload. Nil fields are left
// untouched.
type CompanyUpdateRequest struct {
	Description      *string `json:"description"`
	Website          *string `json:"website"`
	LinkedinURL      *string `json:"linkedin_url"`
	IndustryCategory *string `json:"industry_category"`
	Country          *string `json:"country"`
	StateRegion      *string `json:"state_region"`
	City             *string `json:"city"`
}

// NewCompanyResponse maps a company entity, decoding the Crunchbase
// bracket codes into human-readable labels.
func NewCompanyResponse(company *entity.Company) CompanyResponse {
	resp := CompanyResponse{
		ID:                  company.ID,
		Name:                company.Name,
		Description:         company.Description,
		Website:             company.Website,
		LinkedinURL:         company.LinkedinURL,
		RevenueRange:        company.RevenueRange,
		RevenueRangeLabel:   classify.DecodeRevenueRange(company.RevenueRange),
		EmployeeCount:       company.EmployeeCount,
		EmployeeCountLabel:  classify.DecodeEmployeeCount(company.EmployeeCount),
		PredictedRevenue:    company.PredictedRevenue,
		Country:             company.Country,
		StateRegion:         company.StateRegion,
		City:                company.City,
		CompanySizeCategory: company.CompanySizeCategory,
		RevenueTier:         company.RevenueTier,
		IndustryCategory:    company.IndustryCategory,
		IsPublic:            company.IsPublic,
		IPOTicker:           company.IPOTicker,
		IPODate:             company.IPODate,
		IPOExchange:         company.IPOExchange,
		PEFirms:             []string{},
		Tags:                []TagItem{},
		UpdatedAt:           company.UpdatedAt,
	}
	for _, inv := range company.Investments {
		if inv.PEFirm != nil {
			resp.PEFirms = append(resp.PEFirms, inv.PEFirm.Name)
		}
	}
	for _, tag := range company.Tags {
		resp.Tags = append(resp.Tags, TagItem{Category: tag.TagCategory, Value: tag.TagValue})
	}
	return resp
}
