package dto

// StatsResponse is the aggregate dashboard payload.
type StatsResponse struct {
	TotalCompanies      int64            `json:"total_companies"`
	TotalPEFirms        int64            `json:"total_pe_firms"`
	TotalInvestments    int64            `json:"total_investments"`
	ActiveInvestments   int64            `json:"active_investments"`
	ExitedInvestments   int64            `json:"exited_investments"`
	PublicCompanies     int64            `json:"public_companies"`
	CoInvestedCompanies int64            `json:"co_invested_companies"`
	EnrichedCompanies   int64            `json:"enriched_companies"`
	EnrichmentRate      float64          `json:"enrichment_rate"`
	ByIndustry          map[string]int64 `json:"by_industry"`
	ByCountry           map[string]int64 `json:"by_country"`
}

// FiltersResponse lists the distinct values each dashboard filter can
// take.
type FiltersResponse struct {
	Industries     []string `json:"industries"`
	Countries      []string `json:"countries"`
	SizeCategories []string `json:"size_categories"`
	RevenueTiers   []string `json:"revenue_tiers"`
	PEFirms        []string `json:"pe_firms"`
	Statuses       []string `json:"statuses"`
}
